package generator

import (
	"fmt"
	"strings"

	"hearthplan/internal/domain"
	"hearthplan/internal/timeutil"
)

// Placement is a validated, normalized proposal. Times are minutes since
// midnight on an ISO day number; owner and goal references resolve to known
// entity ids.
type Placement struct {
	Title    string
	Category domain.BlockCategory
	Day      int // 1=Monday..7=Sunday
	StartMin int
	EndMin   int
	OwnerID  *string
	IsShared bool
	GoalID   *string
	Notes    string
}

// ValidateProposal checks one untrusted proposal against the member roster
// and goal set. Malformed proposals are rejected with a reason; unknown
// categories are normalized to "other" rather than rejected, and unknown
// goal references are dropped silently (the link is informational only).
func ValidateProposal(p Proposal, members []domain.FamilyMember, goals []domain.RecurringGoal) (Placement, error) {
	if strings.TrimSpace(p.Title) == "" {
		return Placement{}, fmt.Errorf("missing title")
	}

	day, err := timeutil.ParseDayName(p.Day)
	if err != nil {
		return Placement{}, fmt.Errorf("invalid day %q", p.Day)
	}

	startMin, err := timeutil.ParseClock(p.StartTime)
	if err != nil {
		return Placement{}, fmt.Errorf("invalid start time %q", p.StartTime)
	}
	endMin, err := timeutil.ParseClock(p.EndTime)
	if err != nil {
		return Placement{}, fmt.Errorf("invalid end time %q", p.EndTime)
	}
	if endMin <= startMin {
		return Placement{}, fmt.Errorf("end %q not after start %q", p.EndTime, p.StartTime)
	}

	out := Placement{
		Title:    strings.TrimSpace(p.Title),
		Category: domain.NormalizeCategory(strings.ToLower(strings.TrimSpace(p.Category))),
		Day:      day,
		StartMin: startMin,
		EndMin:   endMin,
		IsShared: p.IsShared,
		Notes:    strings.TrimSpace(p.Notes),
	}

	// Shared placements carry no owner even if the model supplied one.
	if !p.IsShared && p.OwnerID != "" {
		id, ok := resolveMember(p.OwnerID, members)
		if !ok {
			return Placement{}, fmt.Errorf("unknown member %q", p.OwnerID)
		}
		out.OwnerID = &id
	}

	if p.GoalID != "" {
		for _, g := range goals {
			if g.ID == p.GoalID {
				id := g.ID
				out.GoalID = &id
				break
			}
		}
	}

	return out, nil
}

// resolveMember accepts either a member id or, as a fallback for sloppy
// model output, a case-insensitive member name.
func resolveMember(ref string, members []domain.FamilyMember) (string, bool) {
	for _, m := range members {
		if m.ID == ref {
			return m.ID, true
		}
	}
	for _, m := range members {
		if strings.EqualFold(m.Name, ref) {
			return m.ID, true
		}
	}
	return "", false
}
