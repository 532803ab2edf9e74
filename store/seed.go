package store

import (
	"time"

	"civicmap-be/models"
)

func strPtr(s string) *string { return &s }

// SeedComplaints returns the fixed mock entries the collection starts
// with. Timestamps are relative to startup.
func SeedComplaints() []models.Complaint {
	now := time.Now()
	return []models.Complaint{
		{
			ID:          "1",
			Description: "Large pothole on Main Street near the library.",
			Timestamp:   now.Add(-2 * 24 * time.Hour),
			Status:      models.Pending,
			Location:    models.UserLocation{Latitude: 34.052235, Longitude: -118.243683},
			Reporter:    models.Reporter{ID: "user-1", Name: "John Smith", Email: "john.s@example.com"},
			ImageURL:    strPtr("https://via.placeholder.com/400x300.png?text=Pothole"),
		},
		{
			ID:          "2",
			Description: "Broken streetlight at the corner of Oak and 5th.",
			Timestamp:   now.Add(-5 * 24 * time.Hour),
			Status:      models.InProgress,
			Location:    models.UserLocation{Latitude: 34.055, Longitude: -118.245},
			Reporter:    models.Reporter{ID: "user-2", Name: "Emily White", Email: "emily.w@example.com"},
		},
		{
			ID:          "3",
			Description: "Graffiti on the park bench.",
			Timestamp:   now.Add(-10 * 24 * time.Hour),
			Status:      models.Resolved,
			Location:    models.UserLocation{Latitude: 34.050, Longitude: -118.240},
			Reporter:    models.Reporter{ID: "user-3", Name: "Michael Brown", Email: "michael.b@example.com"},
			ImageURL:    strPtr("https://via.placeholder.com/400x300.png?text=Graffiti"),
		},
	}
}

// Complaints is the process-wide complaint collection.
var Complaints = NewComplaintStore(SeedComplaints()...)
