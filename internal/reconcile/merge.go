// Package reconcile merges manual blocks, materialized commitments, and
// AI-proposed placements into one conflict-free block set for a week.
// Precedence is fixed: manual > fixed_commitment > ai_generated, regardless
// of time order or goal priority.
package reconcile

import (
	"fmt"
	"time"

	"hearthplan/internal/contract"
	"hearthplan/internal/domain"
	"hearthplan/internal/generator"
	"hearthplan/internal/timeutil"
)

// Partition splits a schedule's existing blocks into manual blocks (never
// touched by regeneration) and stale blocks (prior fixed and AI output,
// discarded and fully recomputed).
func Partition(blocks []domain.TimeBlock) (manual, stale []domain.TimeBlock) {
	for _, b := range blocks {
		if b.Origin == domain.OriginManual {
			manual = append(manual, b)
		} else {
			stale = append(stale, b)
		}
	}
	return manual, stale
}

// MaterializeCommitments anchors every commitment onto the target week.
// Each commitment yields exactly one fixed-origin block.
func MaterializeCommitments(commitments []domain.RecurringCommitment, weekStart time.Time) ([]domain.TimeBlock, error) {
	var blocks []domain.TimeBlock
	for i := range commitments {
		b, err := commitments[i].Materialize(weekStart)
		if err != nil {
			return nil, fmt.Errorf("materializing commitment %s: %w", commitments[i].ID, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// FilterBlocks drops every candidate that conflicts with a placed block:
// same non-nil owner, neither side shared, overlapping intervals. Survivors
// are also checked against earlier survivors so the kept set is internally
// conflict-free. Each drop becomes a ConflictEvent with the given reason.
func FilterBlocks(candidates, placed []domain.TimeBlock, reason contract.ConflictReason) (kept []domain.TimeBlock, dropped []contract.ConflictEvent) {
	for i := range candidates {
		c := &candidates[i]
		if loser := findConflict(c, placed, kept); loser != nil {
			dropped = append(dropped, conflictEvent(c, reason,
				fmt.Sprintf("overlaps %q", loser.Title)))
			continue
		}
		kept = append(kept, *c)
	}
	return kept, dropped
}

func findConflict(c *domain.TimeBlock, placed, kept []domain.TimeBlock) *domain.TimeBlock {
	for i := range placed {
		if c.ConflictsWith(&placed[i]) {
			return &placed[i]
		}
	}
	for i := range kept {
		if c.ConflictsWith(&kept[i]) {
			return &kept[i]
		}
	}
	return nil
}

func conflictEvent(b *domain.TimeBlock, reason contract.ConflictReason, detail string) contract.ConflictEvent {
	owner := ""
	if b.OwnerID != nil {
		owner = *b.OwnerID
	}
	return contract.ConflictEvent{
		Title:   b.Title,
		OwnerID: owner,
		Day:     timeutil.DayName(b.Day()),
		Reason:  reason,
		Detail:  detail,
	}
}

// PlacementBlock converts a validated placement into a concrete AI-origin
// block anchored onto the target week.
func PlacementBlock(p generator.Placement, weekStart time.Time) domain.TimeBlock {
	return domain.TimeBlock{
		Title:        p.Title,
		Category:     p.Category,
		Start:        timeutil.OnDay(weekStart, p.Day, p.StartMin),
		End:          timeutil.OnDay(weekStart, p.Day, p.EndMin),
		OwnerID:      p.OwnerID,
		IsShared:     p.IsShared,
		OriginGoalID: p.GoalID,
		Origin:       domain.OriginGenerated,
	}
}

// Summarize computes the generation summary over the final block set.
// GoalsScheduled is the total requested weekly frequency across all goals;
// fine-grained goal-to-block attribution is deliberately not attempted.
func Summarize(blocks []domain.TimeBlock, goals []domain.RecurringGoal, conflicts []contract.ConflictEvent) contract.ScheduleSummary {
	perDay := make(map[string]int, 7)
	for day := 1; day <= 7; day++ {
		perDay[timeutil.DayName(day)] = 0
	}
	for i := range blocks {
		perDay[timeutil.DayName(blocks[i].Day())]++
	}

	goalsScheduled := 0
	for i := range goals {
		goalsScheduled += goals[i].FrequencyPerWeek
	}

	return contract.ScheduleSummary{
		TotalBlocks:         len(blocks),
		GoalsScheduled:      goalsScheduled,
		ConflictsSuppressed: len(conflicts),
		BlocksPerDay:        perDay,
	}
}
