package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// dayNames indexes English weekday names by ISO day number (1=Monday).
var dayNames = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsMonday reports whether t falls on a Monday.
func IsMonday(t time.Time) bool {
	return t.Weekday() == time.Monday
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayName returns the English weekday name for an ISO day number (1=Monday..7=Sunday).
func DayName(day int) string {
	if day < 1 || day > 7 {
		return ""
	}
	return dayNames[day]
}

// ParseDayName resolves a weekday name to its ISO day number (1=Monday).
// Matching is case-insensitive and accepts both full names and three-letter
// abbreviations.
func ParseDayName(s string) (int, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for day := 1; day <= 7; day++ {
		full := strings.ToLower(dayNames[day])
		if name == full || (len(name) == 3 && name == full[:3]) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("invalid day name %q", s)
}

// OnDay anchors a minutes-since-midnight offset onto a day of the week
// starting at weekStart. day uses ISO numbering (1=Monday..7=Sunday).
func OnDay(weekStart time.Time, day int, minuteOfDay int) time.Time {
	base := StartOfDay(weekStart).AddDate(0, 0, day-1)
	return base.Add(time.Duration(minuteOfDay) * time.Minute)
}

// ISODay returns the ISO day number (1=Monday..7=Sunday) of t.
func ISODay(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DurationMinutes returns the length of [start, end) in whole minutes.
func DurationMinutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}
