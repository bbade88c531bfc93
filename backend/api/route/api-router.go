package route

import (
	"bookgram/backend/api/handler"
	"bookgram/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetApiRouter sets up the API routes.
func SetApiRouter(router *gin.Engine) {
	router.Use(middleware.RequestId())
	router.Use(middleware.CORS())

	router.GET("/health", handler.HealthCheck)

	apiV1 := router.Group("/api/v1")
	{
		bookRoute := apiV1.Group("/books")
		{
			bookRoute.GET("", handler.ListBooks)
			bookRoute.POST("", handler.CreateBook)
			bookRoute.GET("/:id", handler.GetBook)
			bookRoute.PATCH("/:id", handler.UpdateBook)
			bookRoute.DELETE("/:id", handler.DeleteBook)
		}

		fileRoute := apiV1.Group("/files")
		{
			fileRoute.POST("/save", handler.SaveFile)
			fileRoute.GET("/topic/:topic", handler.GetFileByTopic)
		}
	}
}
