package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicmap-be/models"
	"civicmap-be/session"
)

func decodeState(t *testing.T, body []byte) session.State {
	t.Helper()
	var st session.State
	require.NoError(t, json.Unmarshal(body, &st))
	return st
}

func TestGetSessionDefaults(t *testing.T) {
	resetState()
	c, w := testContext(t, http.MethodGet, "/api/session", "")
	asCitizen(c)

	GetSession(c)
	require.Equal(t, http.StatusOK, w.Code)

	st := decodeState(t, w.Body.Bytes())
	assert.Nil(t, st.Selected)
	assert.True(t, st.PanelOpen)
	assert.Equal(t, session.Desktop, st.Viewport)
	assert.Equal(t, models.DefaultLocation, st.FocalPoint)
}

func TestSelectComplaintSyncsFocalPoint(t *testing.T) {
	resetState()
	c, w := testContext(t, http.MethodPost, "/api/session/select", `{"id":"1"}`)
	asCitizen(c)

	SelectComplaint(c)
	require.Equal(t, http.StatusOK, w.Code)

	st := decodeState(t, w.Body.Bytes())
	require.NotNil(t, st.Selected)
	assert.Equal(t, "1", st.Selected.ID)
	assert.Equal(t, st.Selected.Location, st.FocalPoint)
	assert.True(t, st.PanelOpen)
}

func TestSelectComplaintUnknownID(t *testing.T) {
	resetState()
	c, w := testContext(t, http.MethodPost, "/api/session/select", `{"id":"ghost"}`)
	asCitizen(c)

	SelectComplaint(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClosePanelDropsSelection(t *testing.T) {
	resetState()
	c, _ := testContext(t, http.MethodPost, "/api/session/select", `{"id":"1"}`)
	asCitizen(c)
	SelectComplaint(c)

	c, w := testContext(t, http.MethodPost, "/api/session/close-panel", "")
	asCitizen(c)
	ClosePanel(c)
	require.Equal(t, http.StatusOK, w.Code)

	st := decodeState(t, w.Body.Bytes())
	assert.Nil(t, st.Selected)
	assert.False(t, st.PanelOpen)
	assert.Equal(t, st.DeviceLocation, st.FocalPoint)
}

func TestCompactViewportSelectKeepsPanelClosed(t *testing.T) {
	resetState()
	c, _ := testContext(t, http.MethodPost, "/api/session/viewport", `{"width":390}`)
	asCitizen(c)
	SetViewport(c)

	c, w := testContext(t, http.MethodPost, "/api/session/select", `{"id":"2"}`)
	asCitizen(c)
	SelectComplaint(c)
	require.Equal(t, http.StatusOK, w.Code)

	st := decodeState(t, w.Body.Bytes())
	require.NotNil(t, st.Selected)
	assert.False(t, st.PanelOpen)
	assert.True(t, st.CarouselVisible)
}

func TestSetDeviceLocationMovesFocusWhenUnselected(t *testing.T) {
	resetState()
	c, w := testContext(t, http.MethodPost, "/api/session/location",
		`{"latitude":37.7749,"longitude":-122.4194}`)
	asCitizen(c)

	SetDeviceLocation(c)
	require.Equal(t, http.StatusOK, w.Code)

	st := decodeState(t, w.Body.Bytes())
	assert.Equal(t, models.UserLocation{Latitude: 37.7749, Longitude: -122.4194}, st.FocalPoint)
}

func TestGetMapView(t *testing.T) {
	resetState()
	c, _ := testContext(t, http.MethodPost, "/api/session/select", `{"id":"1"}`)
	asCitizen(c)
	SelectComplaint(c)

	c, w := testContext(t, http.MethodGet, "/api/session/map", "")
	asCitizen(c)
	GetMapView(c)
	require.Equal(t, http.StatusOK, w.Code)

	var view session.MapView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Markers, 3)

	var emphasized int
	for _, m := range view.Markers {
		if m.Emphasized {
			emphasized++
			assert.Equal(t, "1", m.ID)
		}
	}
	assert.Equal(t, 1, emphasized)
}

func TestSessionRequiresIdentity(t *testing.T) {
	resetState()

	handlers := map[string]gin.HandlerFunc{
		"get":    GetSession,
		"select": SelectComplaint,
		"clear":  ClearSelection,
		"close":  ClosePanel,
		"map":    GetMapView,
	}
	for name, handler := range handlers {
		c, w := testContext(t, http.MethodPost, "/api/session", `{"id":"1"}`)
		handler(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "handler %s", name)
	}
}
