package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"bookgram/backend/api/route"
	"bookgram/backend/common"
	"bookgram/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// setupTestRouter wires the API against a throwaway sqlite database and
// upload dir, returning the engine and a restore func.
func setupTestRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	originalDSN := common.DatabaseDSN
	originalSQLitePath := common.SQLitePath
	originalUploadPath := common.UploadPath

	common.DatabaseDSN = ""
	common.SQLitePath = filepath.Join(t.TempDir(), "handler_test.db")
	common.UploadPath = filepath.Join(t.TempDir(), "uploads")

	err := model.InitDB()
	assert.NoError(t, err)

	router := gin.New()
	route.SetApiRouter(router)

	return router, func() {
		common.DatabaseDSN = originalDSN
		common.SQLitePath = originalSQLitePath
		common.UploadPath = originalUploadPath
	}
}

func newJSONRequest(t *testing.T, method string, path string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newSaveFileRequest(t *testing.T, title string, userID string, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		assert.NoError(t, err)
		_, err = part.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.WriteField("title", title))
	assert.NoError(t, writer.WriteField("user_id", userID))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files/save", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	err := json.Unmarshal(recorder.Body.Bytes(), &value)
	assert.NoError(t, err)
	return value
}
