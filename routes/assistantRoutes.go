package routes

import (
	"civicmap-be/controllers"
	"civicmap-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AssistantRoutes sets up the AI chat and video-generation routes
func AssistantRoutes(r *gin.Engine) {
	assistant := r.Group("/api/assistant", middlewares.AuthMiddleware())
	{
		assistant.POST("/chat", controllers.SendChatMessage)
		assistant.GET("/chat/history", controllers.GetChatHistory)
		assistant.POST("/video", controllers.GenerateVideo)
	}
}
