package grid

import (
	"testing"
	"time"

	"hearthplan/internal/domain"
	"hearthplan/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutWeek_DefaultWindow(t *testing.T) {
	g := LayoutWeek(nil, testutil.Monday, nil)

	assert.Equal(t, 6, g.StartHour)
	assert.Equal(t, 23, g.EndHour)
	require.Len(t, g.Rows, 17)
	assert.Equal(t, "06:00", g.Rows[0].Label)
	assert.Equal(t, "22:00", g.Rows[16].Label)

	for _, row := range g.Rows {
		require.Len(t, row.Cells, 7)
		for i, cell := range row.Cells {
			assert.Equal(t, i+1, cell.Day)
		}
	}
}

func TestLayoutWeek_WindowWidensWithPadding(t *testing.T) {
	early := *testutil.NewTestBlock("s1", nil, domain.OriginManual, 1, 4, 5)
	g := LayoutWeek([]domain.TimeBlock{early}, testutil.Monday, nil)

	assert.Equal(t, 3, g.StartHour, "04:00 start widens window to 03:00")
	assert.Equal(t, 23, g.EndHour)
	assert.Len(t, g.Rows, 20)
}

func TestLayoutWeek_WindowClampedToMidnight(t *testing.T) {
	b := *testutil.NewTestBlock("s1", nil, domain.OriginManual, 1, 0, 23)
	g := LayoutWeek([]domain.TimeBlock{b}, testutil.Monday, nil)

	assert.Equal(t, 0, g.StartHour)
	assert.Equal(t, 23, g.EndHour)
	assert.Len(t, g.Rows, 23)
}

func findActivities(g *Grid, hour, day int) []Activity {
	for _, row := range g.Rows {
		if row.Hour == hour {
			return row.Cells[day-1].Activities
		}
	}
	return nil
}

func TestLayoutWeek_BlockSplitAcrossTwoRows(t *testing.T) {
	alice := testutil.StrPtr("alice")
	b := *testutil.NewTestBlock("s1", alice, domain.OriginManual, 2, 9, 10)
	b.Start = b.Start.Add(30 * time.Minute) // 09:30
	b.End = b.End.Add(30 * time.Minute)     // 10:30

	g := LayoutWeek([]domain.TimeBlock{b}, testutil.Monday, nil)

	first := findActivities(g, 9, 2)
	second := findActivities(g, 10, 2)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.InDelta(t, 0.5, first[0].HeightFrac, 1e-9)
	assert.InDelta(t, 0.5, second[0].HeightFrac, 1e-9)
	assert.Equal(t, b.ID, first[0].BlockID)

	assert.Empty(t, findActivities(g, 8, 2))
	assert.Empty(t, findActivities(g, 9, 1), "wrong day stays empty")
}

func TestLayoutWeek_FullHourBlockFillsRow(t *testing.T) {
	b := *testutil.NewTestBlock("s1", nil, domain.OriginFixed, 1, 9, 10)
	g := LayoutWeek([]domain.TimeBlock{b}, testutil.Monday, nil)

	acts := findActivities(g, 9, 1)
	require.Len(t, acts, 1)
	assert.InDelta(t, 1.0, acts[0].HeightFrac, 1e-9)
}

func TestLayoutWeek_ShortBlockGetsMinimumHeight(t *testing.T) {
	b := *testutil.NewTestBlock("s1", nil, domain.OriginManual, 1, 9, 10)
	b.End = b.Start.Add(5 * time.Minute)

	g := LayoutWeek([]domain.TimeBlock{b}, testutil.Monday, nil)

	acts := findActivities(g, 9, 1)
	require.Len(t, acts, 1)
	assert.InDelta(t, minHeightFrac, acts[0].HeightFrac, 1e-9)
}

func TestLayoutWeek_HeightsSumToTrueDuration(t *testing.T) {
	b := *testutil.NewTestBlock("s1", nil, domain.OriginGenerated, 4, 8, 11)
	g := LayoutWeek([]domain.TimeBlock{b}, testutil.Monday, nil)

	total := 0.0
	instances := 0
	for _, row := range g.Rows {
		for _, a := range row.Cells[3].Activities {
			if a.BlockID == b.ID {
				total += a.HeightFrac
				instances++
			}
		}
	}
	assert.Equal(t, 3, instances)
	assert.InDelta(t, 3.0, total, 1e-9)
}

func TestLayoutWeek_BlocksOutsideWeekIgnored(t *testing.T) {
	b := *testutil.NewTestBlock("s1", nil, domain.OriginManual, 1, 9, 10)
	b.Start = b.Start.AddDate(0, 0, 7)
	b.End = b.End.AddDate(0, 0, 7)

	g := LayoutWeek([]domain.TimeBlock{b}, testutil.Monday, nil)
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			assert.Empty(t, cell.Activities)
		}
	}
}

func TestLayoutWeek_CellOrdering(t *testing.T) {
	age := 8
	members := []domain.FamilyMember{
		{ID: "m-zoe", Name: "Zoe", Role: domain.RoleCoParent},
		{ID: "m-adam", Name: "Adam", Role: domain.RolePrimary},
		{ID: "m-kid", Name: "Billy", Role: domain.RoleChild, Age: &age},
	}

	blocks := []domain.TimeBlock{
		*testutil.NewTestBlock("s1", testutil.StrPtr("m-kid"), domain.OriginManual, 1, 9, 10),
		*testutil.NewTestBlock("s1", testutil.StrPtr("m-zoe"), domain.OriginManual, 1, 9, 10),
		*testutil.NewTestBlock("s1", testutil.StrPtr("m-adam"), domain.OriginManual, 1, 9, 10),
	}
	shared := *testutil.NewTestBlock("s1", nil, domain.OriginFixed, 1, 9, 10)
	shared.IsShared = true
	blocks = append(blocks, shared)

	g := LayoutWeek(blocks, testutil.Monday, members)

	acts := findActivities(g, 9, 1)
	require.Len(t, acts, 4)
	assert.True(t, acts[0].IsShared, "shared listed first")
	assert.Equal(t, "m-adam", *acts[1].OwnerID, "adults alphabetically")
	assert.Equal(t, "m-zoe", *acts[2].OwnerID)
	assert.Equal(t, "m-kid", *acts[3].OwnerID, "children last")
}

func TestLayoutWeek_CellLocalConflictFlags(t *testing.T) {
	alice := testutil.StrPtr("alice")
	bob := testutil.StrPtr("bob")

	blocks := []domain.TimeBlock{
		*testutil.NewTestBlock("s1", alice, domain.OriginManual, 1, 9, 10),
		*testutil.NewTestBlock("s1", alice, domain.OriginGenerated, 1, 9, 10),
		*testutil.NewTestBlock("s1", bob, domain.OriginManual, 1, 9, 10),
	}
	shared := *testutil.NewTestBlock("s1", nil, domain.OriginFixed, 1, 9, 10)
	shared.IsShared = true
	blocks = append(blocks, shared)

	g := LayoutWeek(blocks, testutil.Monday, nil)

	acts := findActivities(g, 9, 1)
	require.Len(t, acts, 4)
	for _, a := range acts {
		switch {
		case a.IsShared:
			assert.False(t, a.HasConflict, "shared never flagged")
		case *a.OwnerID == "alice":
			assert.True(t, a.HasConflict, "both alice activities flagged")
		default:
			assert.False(t, a.HasConflict, "bob alone in the cell")
		}
	}
}

func TestLayoutWeek_ConflictIsCellLocal(t *testing.T) {
	alice := testutil.StrPtr("alice")
	a := *testutil.NewTestBlock("s1", alice, domain.OriginManual, 1, 9, 10)
	b := *testutil.NewTestBlock("s1", alice, domain.OriginManual, 1, 10, 11)

	g := LayoutWeek([]domain.TimeBlock{a, b}, testutil.Monday, nil)

	for _, hour := range []int{9, 10} {
		acts := findActivities(g, hour, 1)
		require.Len(t, acts, 1)
		assert.False(t, acts[0].HasConflict, "adjacent rows do not collide")
	}
}
