package formatter

import (
	"fmt"
	"strings"

	"hearthplan/internal/domain"
	"hearthplan/internal/grid"
	"hearthplan/internal/timeutil"
)

const gridCellWidth = 14

// FormatGrid renders a week grid as text: one line per hour row, one column
// per day. Cells show the first activity and a count when more share the
// slot. Conflicting activities render red, dimmed ones faint.
func FormatGrid(g *grid.Grid) string {
	var b strings.Builder

	b.WriteString(Header("Week of " + g.WeekStart.Format("2006-01-02")))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", 6))
	for day := 1; day <= 7; day++ {
		b.WriteString(Bold(pad(timeutil.DayName(day)[:3], gridCellWidth)))
	}
	b.WriteString("\n")

	for _, row := range g.Rows {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-6s", row.Label)))
		for _, cell := range row.Cells {
			b.WriteString(renderCell(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim("legend: ") + OriginTag(domain.OriginManual) + Dim(" manual ") +
		OriginTag(domain.OriginFixed) + Dim(" fixed ") +
		OriginTag(domain.OriginGenerated) + Dim(" generated"))
	return b.String()
}

func renderCell(cell grid.Cell) string {
	if len(cell.Activities) == 0 {
		return pad("·", gridCellWidth)
	}

	a := cell.Activities[0]
	label := truncate(a.Title, gridCellWidth-3)
	if len(cell.Activities) > 1 {
		label = truncate(a.Title, gridCellWidth-6) + fmt.Sprintf(" +%d", len(cell.Activities)-1)
	}

	switch {
	case a.HasConflict:
		return StyleRed.Render(pad(label, gridCellWidth))
	case a.IsDimmed:
		return StyleDim.Render(pad(label, gridCellWidth))
	default:
		return OriginStyle(a.Origin).Render(pad(label, gridCellWidth))
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width-1] + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
