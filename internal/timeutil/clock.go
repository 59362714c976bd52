package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a civil day.
const MinutesPerDay = 24 * 60

// ParseClock parses a wall-clock string in "HH:MM" form into minutes since
// midnight. Hours must be 0-23 and minutes 0-59.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock time %q: hour out of range", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q: minute out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FloorToSlot aligns minutes-since-midnight down to the start of its
// containing slot. slotMin must be positive.
func FloorToSlot(min, slotMin int) int {
	return (min / slotMin) * slotMin
}

// CeilToSlot aligns minutes-since-midnight up to the next slot boundary.
// A value already on a boundary is returned unchanged.
func CeilToSlot(min, slotMin int) int {
	if min%slotMin == 0 {
		return min
	}
	return (min/slotMin + 1) * slotMin
}
