package handler

import (
	"net/http"

	"bookgram/backend/model"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health with a trivial database round trip.
func HealthCheck(c *gin.Context) {
	dbStatus := "healthy"
	var one int
	if err := model.DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	status := "healthy"
	if dbStatus != "healthy" {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}
