package generator

import (
	"fmt"
	"strings"

	"hearthplan/internal/domain"
	"hearthplan/internal/timeutil"
)

// scheduleSystemPrompt instructs the model to emit placement proposals as a
// strict JSON array.
const scheduleSystemPrompt = `You are a weekly schedule planner for a household.
You will receive the family roster, their recurring goals, and the time that is already occupied this week.
Propose activity placements that help each member meet their goals without using occupied time.

You must output ONLY a JSON array. Each element has these exact fields:
- title: short activity name
- category: one of [work, activity, meal, other]
- day: weekday name (monday..sunday)
- start_time: "HH:MM" 24-hour clock
- end_time: "HH:MM" 24-hour clock, after start_time
- owner_id: the member id this activity belongs to (omit for shared activities)
- is_shared: true only for whole-family activities (then omit owner_id)
- goal_id: the goal id this placement works toward, if any
- notes: optional one-line note

CRITICAL RULES:
1. Never place an activity over time that is listed as occupied for the same member
2. Use only member ids and goal ids from the input; never invent ids
3. Respect each goal's preferred times of day and duration where possible
4. Schedule each goal roughly its requested number of times across the week
5. Output ONLY the JSON array, no markdown, no explanation`

// buildUserPrompt renders the generation input as a compact plain-text
// context block for the model.
func buildUserPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Week starting: %s\n", in.WeekStart.Format("2006-01-02"))
	fmt.Fprintf(&b, "Strategy: %s\n", in.Strategy)
	if in.Preferences != "" {
		fmt.Fprintf(&b, "Preferences: %s\n", in.Preferences)
	}

	b.WriteString("\nFamily members:\n")
	for _, m := range in.Members {
		fmt.Fprintf(&b, "- id=%s name=%s role=%s", m.ID, m.Name, m.Role)
		if m.Age != nil {
			fmt.Fprintf(&b, " age=%d", *m.Age)
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nGoals:\n")
	for _, g := range in.Goals {
		fmt.Fprintf(&b, "- id=%s member=%s name=%q times_per_week=%d duration_min=%d priority=%s",
			g.ID, g.MemberID, g.Name, g.FrequencyPerWeek, g.PreferredDurationMin, g.Priority)
		if len(g.PreferredTimes) > 0 {
			parts := make([]string, len(g.PreferredTimes))
			for i, tod := range g.PreferredTimes {
				parts[i] = string(tod)
			}
			fmt.Fprintf(&b, " preferred=%s", strings.Join(parts, ","))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nOccupied time (do not schedule over these for the same member):\n")
	writeOccupied(&b, in.FixedBlocks)
	writeOccupied(&b, in.ManualBlocks)

	return b.String()
}

func writeOccupied(b *strings.Builder, blocks []domain.TimeBlock) {
	for _, blk := range blocks {
		owner := "shared"
		if blk.OwnerID != nil {
			owner = *blk.OwnerID
		}
		fmt.Fprintf(b, "- %s %s-%s owner=%s title=%q\n",
			strings.ToLower(timeutil.DayName(blk.Day())),
			blk.Start.Format("15:04"), blk.End.Format("15:04"),
			owner, blk.Title)
	}
}
