package listing

import (
	"fmt"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// FormatRelative renders the age of ts relative to now as "Just now",
// "Nm ago", "Nh ago" or "Nd ago". Units are floored. Timestamps in the future
// clamp to "Just now". A missing timestamp renders as "—".
func FormatRelative(ts, now time.Time) string {
	if ts.IsZero() {
		return "—"
	}
	minutes := int64(now.Sub(ts) / time.Minute)

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < minutesPerHour:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < minutesPerDay:
		return fmt.Sprintf("%dh ago", minutes/minutesPerHour)
	default:
		return fmt.Sprintf("%dd ago", minutes/minutesPerDay)
	}
}

// FormatTimestamp renders an absolute timestamp for detail views.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("Jan 2, 2006, 03:04 PM")
}
