// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(text string) (time.Time, error) {
	return time.Parse("2006-01-02", text)
}

// Weekday returns the day of week using the 0=Sunday convention used by
// availability windows.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}
