package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hearthplan/internal/timeutil"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// resolveMemberID turns user input into a member id. Accepts an exact name
// (case-insensitive), an exact id, or an unambiguous id prefix.
func resolveMemberID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("member is required")
	}

	members, err := app.Members.List(ctx)
	if err != nil {
		return "", err
	}

	for _, m := range members {
		if strings.EqualFold(m.Name, input) {
			return m.ID, nil
		}
	}
	for _, m := range members {
		if m.ID == input {
			return m.ID, nil
		}
	}

	var matches []string
	for _, m := range members {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("member %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseWeek resolves the --week flag. Empty means the next Monday (today if
// today is a Monday); otherwise the value must be a YYYY-MM-DD Monday.
func parseWeek(value string) (time.Time, error) {
	if value == "" {
		return upcomingMonday(timeNow()), nil
	}
	week, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week %q: expected YYYY-MM-DD", value)
	}
	return week, nil
}

func upcomingMonday(now time.Time) time.Time {
	day := timeutil.StartOfDay(now)
	for !timeutil.IsMonday(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
