package routes

import (
	"civicmap-be/controllers"
	"civicmap-be/middlewares"

	"github.com/gin-gonic/gin"
)

// SessionRoutes sets up the selection and layout coordination routes
func SessionRoutes(r *gin.Engine) {
	sess := r.Group("/api/session", middlewares.AuthMiddleware())
	{
		sess.GET("", controllers.GetSession)
		sess.GET("/map", controllers.GetMapView)
		sess.POST("/select", controllers.SelectComplaint)
		sess.POST("/clear", controllers.ClearSelection)
		sess.POST("/close-panel", controllers.ClosePanel)
		sess.POST("/open-panel", controllers.OpenPanel)
		sess.POST("/map-click", controllers.MapBackgroundClick)
		sess.POST("/viewport", controllers.SetViewport)
		sess.POST("/location", controllers.SetDeviceLocation)
	}
}
