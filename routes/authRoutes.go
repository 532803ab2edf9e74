package routes

import (
	"civicmap-be/controllers"
	"civicmap-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the identity routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
		auth.POST("/logout", middlewares.AuthMiddleware(), controllers.LogoutUser)
	}
}
