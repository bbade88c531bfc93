package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

// RequestIdKey is the gin context key holding the request id.
const RequestIdKey = "request_id"

// RequestId assigns every request an id, echoing a caller-provided one.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIdKey, id)
		c.Writer.Header().Set(RequestIdHeader, id)
		c.Next()
	}
}
