package models

import (
	"fmt"
	"time"
)

// ComplaintStatus enum
type ComplaintStatus string

const (
	Pending    ComplaintStatus = "Pending"
	InProgress ComplaintStatus = "In Progress"
	Resolved   ComplaintStatus = "Resolved"
)

// ParseStatus validates a raw status string against the closed enum.
func ParseStatus(raw string) (ComplaintStatus, error) {
	switch ComplaintStatus(raw) {
	case Pending, InProgress, Resolved:
		return ComplaintStatus(raw), nil
	}
	return "", fmt.Errorf("invalid status %q", raw)
}

// Color returns the display color token for a status. The switch is
// exhaustive over the enum; an unknown value is a programming error.
func (s ComplaintStatus) Color() string {
	switch s {
	case Pending:
		return "yellow"
	case InProgress:
		return "blue"
	case Resolved:
		return "green"
	}
	panic(fmt.Sprintf("unknown complaint status %q", string(s)))
}

// Label returns the display string for a status.
func (s ComplaintStatus) Label() string {
	switch s {
	case Pending, InProgress, Resolved:
		return string(s)
	}
	panic(fmt.Sprintf("unknown complaint status %q", string(s)))
}

// UserLocation is a coordinate pair, used both for the device position
// and for where a complaint occurred.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultLocation is the fallback when geolocation is unavailable.
var DefaultLocation = UserLocation{Latitude: 34.0522, Longitude: -118.2437}

// Complaint represents a civic issue reported by a user. Only Status is
// mutable after creation.
type Complaint struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
	Status      ComplaintStatus `json:"status"`
	Location    UserLocation    `json:"location"`
	Reporter    Reporter        `json:"reporter"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
}
