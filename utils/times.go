// utils/times.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTime converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
// Components past the minute field are ignored. Values are not range-checked;
// callers are expected to pass well-formed times from the store.
func ParseTime(text string) int {
	parts := strings.Split(text, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// FormatTime renders minutes since midnight as a zero-padded HH:MM:SS
// string. Values of 1440 or more are not wrapped; times past midnight are
// not representable.
func FormatTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// AddMinutes advances a minutes-since-midnight value. No wraparound.
func AddMinutes(base, delta int) int {
	return base + delta
}
