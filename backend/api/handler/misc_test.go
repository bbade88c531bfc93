package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheckEndpoint(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	recorder := perform(router, newJSONRequest(t, http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeJSON[map[string]string](t, recorder)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "healthy", body["database"])
}
