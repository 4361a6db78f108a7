package utils

import (
	"fmt"
	"time"
)

// StartOfHour zeroes minutes, seconds and nanoseconds, keeping the location.
func StartOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func SubtractHours(t time.Time, hours int) time.Time {
	return t.Add(-time.Duration(hours) * time.Hour)
}

// FormatHumanReadable renders a timestamp for notification texts,
// e.g. "day 10 of June, at 15:00h".
func FormatHumanReadable(t time.Time) string {
	return fmt.Sprintf("day %d of %s, at %d:%02dh", t.Day(), t.Month().String(), t.Hour(), t.Minute())
}
