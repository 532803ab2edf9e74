package session

import (
	"civicmap-be/models"
)

// Coordinator tracks which complaint is focused and whether the detail
// panel is open, so the map, list and carousel never disagree about the
// current selection. The focal point is never stored: it is always
// derived from (selected, deviceLocation).
type Coordinator struct {
	selected       *models.Complaint
	panelOpen      bool
	deviceLocation models.UserLocation
	viewport       ViewportClass
}

// State is a value snapshot of the coordinator for rendering.
type State struct {
	Selected        *models.Complaint   `json:"selected,omitempty"`
	PanelOpen       bool                `json:"panelOpen"`
	FocalPoint      models.UserLocation `json:"focalPoint"`
	DeviceLocation  models.UserLocation `json:"deviceLocation"`
	Viewport        ViewportClass       `json:"viewport"`
	CarouselVisible bool                `json:"carouselVisible"`
}

// NewCoordinator starts with no selection, the panel at the viewport
// class default, and the map centered on the device location.
func NewCoordinator(viewport ViewportClass, deviceLocation models.UserLocation) *Coordinator {
	return &Coordinator{
		panelOpen:      PanelDefaultOpen(viewport),
		deviceLocation: deviceLocation,
		viewport:       viewport,
	}
}

// Select focuses a complaint. On desktop the panel is forced open so the
// detail view is visible.
func (c *Coordinator) Select(complaint models.Complaint) {
	c.selected = &complaint
	if c.viewport == Desktop {
		c.panelOpen = true
	}
}

// Clear drops the selection, returning the map focus to the device
// location.
func (c *Coordinator) Clear() {
	c.selected = nil
}

// ClosePanel closes the panel and drops the selection. The panel cannot
// be closed while still remembering a selection.
func (c *Coordinator) ClosePanel() {
	c.panelOpen = false
	c.Clear()
}

// OpenPanel reopens the panel, the toggle affordance on compact viewports.
func (c *Coordinator) OpenPanel() {
	c.panelOpen = true
}

// MapBackgroundClick handles a tap on the map background, which clears
// the selection only on compact viewports.
func (c *Coordinator) MapBackgroundClick() {
	if c.viewport == Compact {
		c.Clear()
	}
}

// DeviceLocationChanged records a new device position. With no selection
// active the focal point follows it automatically.
func (c *Coordinator) DeviceLocationChanged(loc models.UserLocation) {
	c.deviceLocation = loc
}

// SetViewportWidth re-evaluates the layout policy. When the class flips,
// the panel visibility resets to the new class's default.
func (c *Coordinator) SetViewportWidth(width int) {
	class := ClassForWidth(width)
	if class != c.viewport {
		c.viewport = class
		c.panelOpen = PanelDefaultOpen(class)
	}
}

// FocalPoint is the coordinate the map centers on: the selection's
// location while one is active, the device location otherwise.
func (c *Coordinator) FocalPoint() models.UserLocation {
	if c.selected != nil {
		return c.selected.Location
	}
	return c.deviceLocation
}

// Selected returns the focused complaint, if any.
func (c *Coordinator) Selected() (models.Complaint, bool) {
	if c.selected == nil {
		return models.Complaint{}, false
	}
	return *c.selected, true
}

// PanelOpen reports whether the detail panel is visible.
func (c *Coordinator) PanelOpen() bool { return c.panelOpen }

// Viewport returns the current viewport class.
func (c *Coordinator) Viewport() ViewportClass { return c.viewport }

// Snapshot renders the coordinator as an immutable state value.
func (c *Coordinator) Snapshot() State {
	st := State{
		PanelOpen:       c.panelOpen,
		FocalPoint:      c.FocalPoint(),
		DeviceLocation:  c.deviceLocation,
		Viewport:        c.viewport,
		CarouselVisible: CarouselVisible(c.viewport),
	}
	if c.selected != nil {
		sel := *c.selected
		st.Selected = &sel
	}
	return st
}
