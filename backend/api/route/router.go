package route

import (
	"github.com/gin-gonic/gin"
)

// SetRouter sets up all routes on the engine.
func SetRouter(router *gin.Engine) {
	SetApiRouter(router)
}
