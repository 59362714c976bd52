package formatter

import (
	"fmt"
	"strings"

	"hearthplan/internal/domain"
	"hearthplan/internal/timeutil"
)

// memberName resolves an owner pointer to a display name. Shared and
// unattributed entries render as "family".
func memberName(ownerID *string, members []domain.FamilyMember) string {
	if ownerID == nil {
		return "family"
	}
	for _, m := range members {
		if m.ID == *ownerID {
			return m.Name
		}
	}
	return *ownerID
}

// FormatMemberList renders members in display order.
func FormatMemberList(members []domain.FamilyMember) string {
	var b strings.Builder
	b.WriteString(Header("Family"))
	b.WriteString("\n")
	for _, m := range domain.SortMembersForDisplay(members) {
		age := ""
		if m.Age != nil {
			age = fmt.Sprintf(", %d", *m.Age)
		}
		fmt.Fprintf(&b, "  %s %s%s\n",
			Bold(m.Name), Dim(string(m.Role)), Dim(age))
		fmt.Fprintf(&b, "    %s\n", Dim(m.ID))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatGoalList renders goals grouped under their owning member's name.
func FormatGoalList(goals []domain.RecurringGoal, members []domain.FamilyMember) string {
	var b strings.Builder
	b.WriteString(Header("Goals"))
	b.WriteString("\n")
	for _, g := range goals {
		owner := memberName(&g.MemberID, members)
		times := ""
		if len(g.PreferredTimes) > 0 {
			parts := make([]string, len(g.PreferredTimes))
			for i, tod := range g.PreferredTimes {
				parts[i] = string(tod)
			}
			times = " " + Dim("("+strings.Join(parts, ", ")+")")
		}
		fmt.Fprintf(&b, "  %s %s %s %dx/week, %dmin%s\n",
			Bold(g.Name), Dim("for "+owner), priorityTag(g.Priority),
			g.FrequencyPerWeek, g.PreferredDurationMin, times)
		fmt.Fprintf(&b, "    %s\n", Dim(g.ID))
	}
	return strings.TrimRight(b.String(), "\n")
}

func priorityTag(p domain.GoalPriority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("high")
	case domain.PriorityLow:
		return StyleDim.Render("low")
	default:
		return StyleYellow.Render("med")
	}
}

// FormatCommitmentList renders commitments ordered as given.
func FormatCommitmentList(commitments []domain.RecurringCommitment, members []domain.FamilyMember) string {
	var b strings.Builder
	b.WriteString(Header("Commitments"))
	b.WriteString("\n")
	for _, c := range commitments {
		fmt.Fprintf(&b, "  %-9s %s-%s  %s %s\n",
			timeutil.DayName(c.DayOfWeek), c.StartTime, c.EndTime,
			Bold(c.Title), Dim(memberName(c.OwnerID, members)))
		fmt.Fprintf(&b, "    %s\n", Dim(c.ID))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatBlockList renders one week's blocks chronologically.
func FormatBlockList(blocks []domain.TimeBlock, members []domain.FamilyMember) string {
	var b strings.Builder
	b.WriteString(Header("Blocks"))
	b.WriteString("\n")
	for _, blk := range blocks {
		fmt.Fprintf(&b, "  %-9s %s-%s %s %s %s\n",
			timeutil.DayName(blk.Day()),
			blk.Start.Format("15:04"), blk.End.Format("15:04"),
			OriginTag(blk.Origin), Bold(blk.Title),
			Dim(memberName(blk.OwnerID, members)))
		fmt.Fprintf(&b, "    %s\n", Dim(blk.ID))
	}
	return strings.TrimRight(b.String(), "\n")
}
