package utils

import (
	"fmt"
	"math"
	"time"
)

// Fixed-divisor approximations, in seconds.
const (
	secondsPerYear   = 31536000
	secondsPerMonth  = 2592000
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// TimeSince buckets the elapsed time since t into the largest unit whose
// quotient exceeds 1, truncating toward zero, falling back to seconds.
func TimeSince(t time.Time) string {
	return timeSinceAt(t, time.Now())
}

func timeSinceAt(t, now time.Time) string {
	seconds := math.Floor(now.Sub(t).Seconds())

	if interval := seconds / secondsPerYear; interval > 1 {
		return fmt.Sprintf("%d years ago", int64(interval))
	}
	if interval := seconds / secondsPerMonth; interval > 1 {
		return fmt.Sprintf("%d months ago", int64(interval))
	}
	if interval := seconds / secondsPerDay; interval > 1 {
		return fmt.Sprintf("%d days ago", int64(interval))
	}
	if interval := seconds / secondsPerHour; interval > 1 {
		return fmt.Sprintf("%d hours ago", int64(interval))
	}
	if interval := seconds / secondsPerMinute; interval > 1 {
		return fmt.Sprintf("%d minutes ago", int64(interval))
	}
	return fmt.Sprintf("%d seconds ago", int64(seconds))
}
