package session

import (
	"civicmap-be/models"
)

// Marker is one complaint pin for the map widget.
type Marker struct {
	ID         string              `json:"id"`
	Location   models.UserLocation `json:"location"`
	Color      string              `json:"color"`
	Emphasized bool                `json:"emphasized"`
}

// MapView is everything the map widget needs to render: complaint
// markers, the focal point, and the device's own marker.
type MapView struct {
	Markers    []Marker            `json:"markers"`
	FocalPoint models.UserLocation `json:"focalPoint"`
	SelfMarker models.UserLocation `json:"selfMarker"`
}

// BuildMapView projects the complaint snapshot and session state into
// the map widget's input. The selected complaint's marker is emphasized.
func BuildMapView(complaints []models.Complaint, st State) MapView {
	view := MapView{
		Markers:    make([]Marker, 0, len(complaints)),
		FocalPoint: st.FocalPoint,
		SelfMarker: st.DeviceLocation,
	}
	for _, c := range complaints {
		view.Markers = append(view.Markers, Marker{
			ID:         c.ID,
			Location:   c.Location,
			Color:      c.Status.Color(),
			Emphasized: st.Selected != nil && st.Selected.ID == c.ID,
		})
	}
	return view
}
