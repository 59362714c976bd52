package contract

import (
	"time"

	"hearthplan/internal/domain"
)

// GenerateScheduleRequest asks for a full regeneration of one owner's week.
type GenerateScheduleRequest struct {
	OwnerID     string
	WeekStart   time.Time // must be a Monday
	Strategy    domain.Strategy
	Preferences string
}

// ConflictReason classifies why a candidate block was suppressed.
type ConflictReason string

const (
	// ConflictFixedOverlapsManual: a materialized commitment lost to a
	// manual block for the same owner.
	ConflictFixedOverlapsManual ConflictReason = "FIXED_OVERLAPS_MANUAL"

	// ConflictPlacementOverlaps: an AI placement lost to an already-placed
	// block for the same owner.
	ConflictPlacementOverlaps ConflictReason = "PLACEMENT_OVERLAPS"

	// ConflictPlacementInvalid: an AI proposal failed field validation.
	ConflictPlacementInvalid ConflictReason = "PLACEMENT_INVALID"
)

// ConflictEvent records one suppressed candidate. Non-fatal, observational
// only; never surfaced as an error.
type ConflictEvent struct {
	Title   string
	OwnerID string // empty for shared/unattributed candidates
	Day     string // weekday name, empty if the candidate never got that far
	Reason  ConflictReason
	Detail  string
}

// ScheduleSummary aggregates the outcome of one generation run.
type ScheduleSummary struct {
	TotalBlocks         int
	GoalsScheduled      int // total requested goal frequency, not per-block attribution
	ConflictsSuppressed int
	BlocksPerDay        map[string]int // weekday name -> block count
}

// GenerateScheduleResponse is the result of a generation run.
type GenerateScheduleResponse struct {
	ScheduleID string
	Summary    ScheduleSummary
	Blocks     []domain.TimeBlock
	Conflicts  []ConflictEvent
}
