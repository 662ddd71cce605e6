package domain

import (
	"fmt"
	"time"
)

// RecencyThreshold is how long an item keeps its NEW badge.
const RecencyThreshold = 48 * time.Hour

// IsRecent reports whether createdAt falls within threshold of now.
func IsRecent(createdAt time.Time, threshold time.Duration, now time.Time) bool {
	return now.Sub(createdAt) < threshold
}

// RelativeAge buckets the elapsed time since createdAt into the largest
// non-zero unit: days, then hours, then minutes, then "Just now".
// Floor division, no rounding.
func RelativeAge(createdAt, now time.Time) string {
	diff := now.Sub(createdAt)

	if days := int(diff.Hours() / 24); days > 0 {
		return fmt.Sprintf("%dd ago", days)
	}
	if hours := int(diff.Hours()); hours > 0 {
		return fmt.Sprintf("%dh ago", hours)
	}
	if minutes := int(diff.Minutes()); minutes > 0 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	return "Just now"
}
