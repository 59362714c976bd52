package formatter

import (
	"fmt"
	"strings"
	"time"

	"hearthplan/internal/contract"
	"hearthplan/internal/timeutil"
)

// FormatGenerateResult renders the outcome of a generation run: summary
// counts, the per-day histogram, and any suppressed candidates.
func FormatGenerateResult(resp *contract.GenerateScheduleResponse, weekStart time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Schedule for week of " + weekStart.Format("2006-01-02")))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s blocks, %s goal slots requested, %s conflicts suppressed\n",
		Bold(fmt.Sprintf("%d", resp.Summary.TotalBlocks)),
		Bold(fmt.Sprintf("%d", resp.Summary.GoalsScheduled)),
		Bold(fmt.Sprintf("%d", resp.Summary.ConflictsSuppressed)))

	b.WriteString("\n")
	for day := 1; day <= 7; day++ {
		name := timeutil.DayName(day)
		count := resp.Summary.BlocksPerDay[name]
		bar := strings.Repeat("■", count)
		if count == 0 {
			bar = Dim("·")
		} else {
			bar = StyleGreen.Render(bar)
		}
		fmt.Fprintf(&b, "  %-9s %s\n", name, bar)
	}

	if len(resp.Conflicts) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Suppressed"))
		b.WriteString("\n")
		for _, ev := range resp.Conflicts {
			who := ev.OwnerID
			if who == "" {
				who = "family"
			}
			fmt.Fprintf(&b, "  %s %s %s %s\n",
				StyleYellow.Render(string(ev.Reason)),
				Bold(ev.Title), Dim(who+" "+ev.Day), Dim(ev.Detail))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
