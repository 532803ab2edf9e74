package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSinceBuckets(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"just now", 30 * time.Second, "30 seconds ago"},
		{"ninety seconds", 90 * time.Second, "1 minutes ago"},
		{"two minutes", 2 * time.Minute, "2 minutes ago"},
		{"just over an hour", 3661 * time.Second, "1 hours ago"},
		{"two days", 172800 * time.Second, "2 days ago"},
		{"forty days", 40 * 24 * time.Hour, "1 months ago"},
		{"two years", 2 * 365 * 24 * time.Hour, "2 years ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := timeSinceAt(now.Add(-tc.elapsed), now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimeSinceZeroElapsed(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "0 seconds ago", timeSinceAt(now, now))
}
