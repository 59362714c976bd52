package formatter

import (
	"strings"
	"testing"

	"hearthplan/internal/domain"
	"hearthplan/internal/grid"
	"hearthplan/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestFormatGrid_EmptyWeek(t *testing.T) {
	g := grid.LayoutWeek(nil, testutil.Monday, nil)
	out := FormatGrid(g)

	assert.Contains(t, out, "WEEK OF 2025-03-03")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "06:00")
	assert.Contains(t, out, "22:00")
	assert.NotContains(t, out, "23:00", "window ends at 23:00 so the last row is 22:00")
}

func TestFormatGrid_ShowsActivitiesAndOverflowCount(t *testing.T) {
	alice := testutil.StrPtr("alice")
	a := *testutil.NewTestBlock("s1", alice, domain.OriginManual, 1, 9, 10)
	a.Title = "Dentist"
	b := *testutil.NewTestBlock("s1", testutil.StrPtr("bob"), domain.OriginManual, 1, 9, 10)
	b.Title = "Gym"

	g := grid.LayoutWeek([]domain.TimeBlock{a, b}, testutil.Monday, nil)
	out := FormatGrid(g)

	assert.Contains(t, out, "Dentist")
	assert.Contains(t, out, "+1", "second activity in the cell collapses into a count")
}

func TestFormatGrid_LongTitlesTruncated(t *testing.T) {
	b := *testutil.NewTestBlock("s1", nil, domain.OriginFixed, 3, 12, 13)
	b.Title = "An unreasonably long activity title"

	g := grid.LayoutWeek([]domain.TimeBlock{b}, testutil.Monday, nil)
	out := FormatGrid(g)

	assert.NotContains(t, out, b.Title)
	assert.Contains(t, out, "…")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(stripANSI(line))), 6+7*gridCellWidth+2)
	}
}

// stripANSI removes escape sequences so width assertions see the visible text.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
