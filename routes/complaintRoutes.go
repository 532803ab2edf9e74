package routes

import (
	"os"
	"strconv"

	"civicmap-be/controllers"
	"civicmap-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ComplaintRoutes sets up the complaint routes. Reads are public (the
// dashboard is visible without logging in); filing and triage require an
// identity.
func ComplaintRoutes(r *gin.Engine) {
	limit := 10
	if raw := os.Getenv("REPORT_RATE_LIMIT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	complaint := r.Group("/api/complaints")
	{
		complaint.GET("", controllers.GetAllComplaints)
		complaint.GET("/stats", controllers.GetComplaintStats)
		complaint.GET("/recent", controllers.GetRecentComplaints)
		complaint.GET("/:id", controllers.GetComplaint)
		complaint.POST("", middlewares.AuthMiddleware(), middlewares.ReportRateLimiter(limit), controllers.CreateComplaint)
		complaint.PATCH("/:id/status", middlewares.AuthMiddleware(), controllers.UpdateComplaintStatus)
	}
}
