package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"civicmap-be/models"
	"civicmap-be/store"
	"civicmap-be/utils"

	"github.com/gin-gonic/gin"
)

var complaints = store.Complaints

// CreateComplaint handles the submission of a new report
func CreateComplaint(c *gin.Context) {
	reporter, ok := currentReporter(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Description string  `json:"description" binding:"required,max=1000"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		ImageURL    *string `json:"imageUrl,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := store.Draft{
		Description: input.Description,
		Location:    models.UserLocation{Latitude: input.Latitude, Longitude: input.Longitude},
		ImageURL:    input.ImageURL,
	}

	complaint, err := complaints.Create(draft, &reporter)
	if err != nil {
		if errors.Is(err, store.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

// GetAllComplaints returns the complaint collection in insertion order
func GetAllComplaints(c *gin.Context) {
	list := complaints.List()

	out := make([]gin.H, 0, len(list))
	for _, complaint := range list {
		out = append(out, complaintResponse(complaint))
	}

	c.JSON(http.StatusOK, gin.H{
		"complaints": out,
		"total":      len(out),
	})
}

// GetComplaint retrieves a complaint by its ID
func GetComplaint(c *gin.Context) {
	id := c.Param("id")

	complaint, ok := complaints.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	c.JSON(http.StatusOK, complaintResponse(complaint))
}

// UpdateComplaintStatus replaces a complaint's status; all other fields
// are immutable after creation
func UpdateComplaintStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	complaint, err := complaints.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update complaint"})
		return
	}

	c.JSON(http.StatusOK, complaint)
}

// GetComplaintStats returns the per-status breakdown for the dashboard
func GetComplaintStats(c *gin.Context) {
	stats := store.Aggregate(complaints.List())
	c.JSON(http.StatusOK, stats)
}

// GetRecentComplaints returns the newest complaints, most recent first
func GetRecentComplaints(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 100 {
		limit = 5
	}

	recent := store.Recent(complaints.List(), limit)

	out := make([]gin.H, 0, len(recent))
	for _, complaint := range recent {
		out = append(out, complaintResponse(complaint))
	}

	c.JSON(http.StatusOK, out)
}

// complaintResponse decorates a complaint with its display derivations
// (status color and label, relative age).
func complaintResponse(complaint models.Complaint) gin.H {
	return gin.H{
		"id":          complaint.ID,
		"description": complaint.Description,
		"timestamp":   complaint.Timestamp,
		"status":      complaint.Status,
		"statusColor": complaint.Status.Color(),
		"statusLabel": complaint.Status.Label(),
		"reportedAgo": utils.TimeSince(complaint.Timestamp),
		"location":    complaint.Location,
		"reporter":    complaint.Reporter,
		"imageUrl":    complaint.ImageURL,
	}
}
