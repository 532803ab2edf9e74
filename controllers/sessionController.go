package controllers

import (
	"net/http"

	"civicmap-be/models"
	"civicmap-be/session"

	"github.com/gin-gonic/gin"
)

var sessions = session.Sessions

func sessionUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetSession returns the current selection and layout snapshot
func GetSession(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, sessions.Snapshot(userID))
}

// SelectComplaint focuses a complaint across the map, list and carousel
func SelectComplaint(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, found := complaints.Get(input.ID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	st := sessions.Update(userID, func(coord *session.Coordinator) {
		coord.Select(complaint)
	})
	c.JSON(http.StatusOK, st)
}

// ClearSelection drops the active selection
func ClearSelection(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	st := sessions.Update(userID, func(coord *session.Coordinator) {
		coord.Clear()
	})
	c.JSON(http.StatusOK, st)
}

// ClosePanel closes the detail panel, which always drops the selection
func ClosePanel(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	st := sessions.Update(userID, func(coord *session.Coordinator) {
		coord.ClosePanel()
	})
	c.JSON(http.StatusOK, st)
}

// OpenPanel reopens the panel from the compact toggle affordance
func OpenPanel(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	st := sessions.Update(userID, func(coord *session.Coordinator) {
		coord.OpenPanel()
	})
	c.JSON(http.StatusOK, st)
}

// MapBackgroundClick handles a tap on empty map space, which clears the
// selection only on compact viewports
func MapBackgroundClick(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	st := sessions.Update(userID, func(coord *session.Coordinator) {
		coord.MapBackgroundClick()
	})
	c.JSON(http.StatusOK, st)
}

// SetViewport records the client's viewport width and re-applies the
// layout policy
func SetViewport(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Width int `json:"width" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st := sessions.Update(userID, func(coord *session.Coordinator) {
		coord.SetViewportWidth(input.Width)
	})
	c.JSON(http.StatusOK, st)
}

// SetDeviceLocation records a best-effort geolocation fix; the focal
// point follows it while nothing is selected
func SetDeviceLocation(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc := models.UserLocation{Latitude: *input.Latitude, Longitude: *input.Longitude}
	st := sessions.Update(userID, func(coord *session.Coordinator) {
		coord.DeviceLocationChanged(loc)
	})
	c.JSON(http.StatusOK, st)
}

// GetMapView returns the marker projection the map widget renders from
func GetMapView(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	st := sessions.Snapshot(userID)
	c.JSON(http.StatusOK, session.BuildMapView(complaints.List(), st))
}
