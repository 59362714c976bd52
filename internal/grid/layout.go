// Package grid turns a week's time blocks into a renderable hour-by-day
// structure. The transform is pure: it never touches storage and does not
// care how the blocks were produced.
package grid

import (
	"sort"
	"time"

	"hearthplan/internal/domain"
	"hearthplan/internal/timeutil"
)

const (
	defaultStartHour = 6
	defaultEndHour   = 23

	// minHeightFrac guarantees a renderable sliver even for very short
	// blocks. Heights are fractions of a one-hour row.
	minHeightFrac = 0.25
)

// Activity is one block instance inside a single cell. A block spanning
// several hour rows appears once per row, each instance carrying the
// fraction of that row it occupies.
type Activity struct {
	BlockID     string
	Title       string
	Category    domain.BlockCategory
	Origin      domain.BlockOrigin
	Start       time.Time
	End         time.Time
	OwnerID     *string
	IsShared    bool
	HeightFrac  float64
	HasConflict bool
	IsDimmed    bool
}

// Cell is one (hour, day) slot. Day uses ISO numbering (1=Monday).
type Cell struct {
	Day        int
	Activities []Activity
}

// Row is one whole-hour slot across the week. Cells always has length 7.
type Row struct {
	Hour  int
	Label string
	Cells []Cell
}

// Grid is the full week layout. Rows covers [StartHour, EndHour) with one
// row per hour.
type Grid struct {
	WeekStart time.Time
	StartHour int
	EndHour   int
	Rows      []Row
}

// LayoutWeek lays out blocks for the week beginning at weekStart. The
// rendered window defaults to 06:00-23:00 and widens, with one hour of
// padding, to cover every supplied block, clamped to [00:00, 23:00].
// Blocks outside the week are ignored. members fixes the display order of
// activities within a cell.
func LayoutWeek(blocks []domain.TimeBlock, weekStart time.Time, members []domain.FamilyMember) *Grid {
	weekStart = timeutil.StartOfDay(weekStart)
	startHour, endHour := window(blocks)

	g := &Grid{
		WeekStart: weekStart,
		StartHour: startHour,
		EndHour:   endHour,
		Rows:      make([]Row, 0, endHour-startHour),
	}
	for hour := startHour; hour < endHour; hour++ {
		row := Row{Hour: hour, Label: timeutil.FormatClock(hour * 60), Cells: make([]Cell, 7)}
		for i := range row.Cells {
			row.Cells[i].Day = i + 1
		}
		g.Rows = append(g.Rows, row)
	}

	for i := range blocks {
		g.place(&blocks[i], weekStart)
	}

	rank := displayRank(members)
	for r := range g.Rows {
		for c := range g.Rows[r].Cells {
			cell := &g.Rows[r].Cells[c]
			orderCell(cell, rank)
			flagCellConflicts(cell)
		}
	}
	return g
}

// window computes the [start, end) hour range to render.
func window(blocks []domain.TimeBlock) (int, int) {
	start, end := defaultStartHour, defaultEndHour
	for i := range blocks {
		startMin, endMin := minutesOfDay(&blocks[i])
		if h := timeutil.FloorToSlot(startMin, 60)/60 - 1; h < start {
			start = h
		}
		if h := timeutil.CeilToSlot(endMin, 60)/60 + 1; h > end {
			end = h
		}
	}
	if start < 0 {
		start = 0
	}
	if end > 23 {
		end = 23
	}
	return start, end
}

// minutesOfDay returns the block's interval as minutes since midnight of its
// own day. An end exactly at midnight counts as minute 1440, not 0.
func minutesOfDay(b *domain.TimeBlock) (int, int) {
	dayStart := timeutil.StartOfDay(b.Start)
	return timeutil.DurationMinutes(dayStart, b.Start), timeutil.DurationMinutes(dayStart, b.End)
}

func (g *Grid) place(b *domain.TimeBlock, weekStart time.Time) {
	dayIdx := int(timeutil.StartOfDay(b.Start).Sub(weekStart).Hours() / 24)
	if dayIdx < 0 || dayIdx > 6 {
		return
	}

	startMin, endMin := minutesOfDay(b)
	for r := range g.Rows {
		slotStart := g.Rows[r].Hour * 60
		slotEnd := slotStart + 60
		overlap := min(endMin, slotEnd) - max(startMin, slotStart)
		if overlap <= 0 {
			continue
		}
		frac := float64(overlap) / 60
		if frac < minHeightFrac {
			frac = minHeightFrac
		}
		cell := &g.Rows[r].Cells[dayIdx]
		cell.Activities = append(cell.Activities, Activity{
			BlockID:    b.ID,
			Title:      b.Title,
			Category:   b.Category,
			Origin:     b.Origin,
			Start:      b.Start,
			End:        b.End,
			OwnerID:    b.OwnerID,
			IsShared:   b.IsShared,
			HeightFrac: frac,
		})
	}
}

// displayRank maps member id to position in the fixed display order.
func displayRank(members []domain.FamilyMember) map[string]int {
	sorted := domain.SortMembersForDisplay(members)
	rank := make(map[string]int, len(sorted))
	for i, m := range sorted {
		rank[m.ID] = i
	}
	return rank
}

// orderCell sorts a cell's activities: shared first, then owners in display
// order, unknown owners last. The sort is stable so ties keep input order.
func orderCell(cell *Cell, rank map[string]int) {
	pos := func(a *Activity) int {
		if a.IsShared {
			return -1
		}
		if a.OwnerID != nil {
			if r, ok := rank[*a.OwnerID]; ok {
				return r
			}
		}
		return len(rank)
	}
	sort.SliceStable(cell.Activities, func(i, j int) bool {
		return pos(&cell.Activities[i]) < pos(&cell.Activities[j])
	})
}

// flagCellConflicts marks every activity of an owner holding more than one
// activity in this cell. The check is deliberately cell-local; shared
// activities are never flagged.
func flagCellConflicts(cell *Cell) {
	perOwner := make(map[string]int)
	for i := range cell.Activities {
		a := &cell.Activities[i]
		if a.IsShared || a.OwnerID == nil {
			continue
		}
		perOwner[*a.OwnerID]++
	}
	for i := range cell.Activities {
		a := &cell.Activities[i]
		if a.IsShared || a.OwnerID == nil {
			continue
		}
		if perOwner[*a.OwnerID] > 1 {
			a.HasConflict = true
		}
	}
}
