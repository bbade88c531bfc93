package middleware

import (
	"time"

	"bookgram/backend/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the CORS middleware from the configured allowed origins.
func CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIdHeader}
	config.MaxAge = 12 * time.Hour

	if len(common.AllowedOrigins) == 1 && common.AllowedOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = common.AllowedOrigins
		config.AllowCredentials = true
	}
	return cors.New(config)
}
