package domain

import (
	"fmt"
	"time"
)

// Wall-clock layout used throughout the benchmark datasets ("9:00AM", "12:30PM").
// Minute granularity; all times fall on the same calendar day, so parsed values
// share the zero date and compare directly.
const ClockLayout = "3:04PM"

// ParseClock parses a time-of-day string in the dataset's AM/PM format.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock: %q: %w", s, err)
	}
	return t, nil
}
