package common

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body shape of every non-2xx response.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// RespError responds with an error message, appending err when present.
func RespError(c *gin.Context, statusCode int, msg string, err error) {
	detail := msg
	if err != nil {
		detail = msg + ": " + err.Error()
	}
	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// RespErrorStr responds with a plain error message.
func RespErrorStr(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, ErrorResponse{Detail: msg})
}

// RespErrorDetail responds with a structured detail, e.g. a field error list.
func RespErrorDetail(c *gin.Context, statusCode int, detail any) {
	c.JSON(statusCode, ErrorResponse{Detail: detail})
}
