package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"Pending", "In Progress", "Resolved"} {
		status, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(status))
	}

	_, err := ParseStatus("Closed")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestStatusColorAndLabel(t *testing.T) {
	assert.Equal(t, "yellow", Pending.Color())
	assert.Equal(t, "blue", InProgress.Color())
	assert.Equal(t, "green", Resolved.Color())

	assert.Equal(t, "Pending", Pending.Label())
	assert.Equal(t, "In Progress", InProgress.Label())
	assert.Equal(t, "Resolved", Resolved.Label())
}

func TestStatusColorPanicsOutsideEnum(t *testing.T) {
	assert.Panics(t, func() {
		ComplaintStatus("Closed").Color()
	})
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("admin")
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	role, ok = ParseRole("citizen")
	require.True(t, ok)
	assert.Equal(t, RoleCitizen, role)

	_, ok = ParseRole("moderator")
	assert.False(t, ok)
}

func TestReporterForRole(t *testing.T) {
	assert.Equal(t, AdminReporter, ReporterForRole(RoleAdmin))
	assert.Equal(t, CitizenReporter, ReporterForRole(RoleCitizen))
}
