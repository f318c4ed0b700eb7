package schedule

import (
	"strconv"
	"strings"
)

// ParseClock converts an "HH:MM" string to minutes since midnight.
// No validation is performed: malformed parts parse as zero, so
// comparisons over malformed times have undefined ordering. Room data
// is trusted to carry well-formed times.
func ParseClock(s string) int {
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	var m int
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}

// MinutesOfDay returns how many minutes into the day the given hour and
// minute fall.
func MinutesOfDay(hour, minute int) int {
	return hour*60 + minute
}
