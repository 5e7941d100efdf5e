// Package report turns tracker state into the strings shown to the user.
package report

import (
	"fmt"
	"strings"
	"time"
)

// StatusActive is shown while the user is within the idle threshold.
const StatusActive = "All caught up!"

// IdleDuration renders elapsed inactivity as
// "{h} hour(s) {m} minute(s) {s} second(s)". The hours segment is
// omitted when zero, the minutes segment when hours and minutes are both
// zero; the seconds segment is always present.
func IdleDuration(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}

	total := int(elapsed / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if hours > 0 || minutes > 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}
	parts = append(parts, pluralize(seconds, "second"))
	return strings.Join(parts, " ")
}

// ClockTime renders a wall-clock timestamp, honoring the 12/24-hour
// preference.
func ClockTime(at time.Time, use24Hour bool) string {
	if use24Hour {
		return at.Format("15:04:05")
	}
	return at.Format("3:04:05 PM")
}

// StatusIdle renders the idle status line.
func StatusIdle(elapsed time.Duration) string {
	return "Idle for " + IdleDuration(elapsed)
}

// LastActivityNotice renders the on-demand last-activity line.
func LastActivityNotice(at time.Time, use24Hour bool) string {
	return "You stopped typing at: " + ClockTime(at, use24Hour)
}

func pluralize(count int, unit string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", count, unit)
}
