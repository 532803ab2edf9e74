package routes

import (
	"civicmap-be/controllers"
	"civicmap-be/middlewares"

	"github.com/gin-gonic/gin"
)

// MediaRoutes sets up the attachment upload route
func MediaRoutes(r *gin.Engine) {
	media := r.Group("/api/media", middlewares.AuthMiddleware())
	{
		media.POST("/upload", controllers.UploadImage)
	}
}
