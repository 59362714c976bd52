// Package generator wraps the external generative-model call that proposes
// weekly activity placements. Its output is untrusted text: every proposal
// must pass ValidateProposal before the reconciliation engine will touch it.
package generator

import (
	"context"
	"time"

	"hearthplan/internal/domain"
)

// Proposal is a single candidate placement as returned by the model.
// All fields are untrusted and unvalidated.
type Proposal struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	OwnerID   string `json:"owner_id,omitempty"`
	IsShared  bool   `json:"is_shared,omitempty"`
	GoalID    string `json:"goal_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Input is the full context handed to the generator: who lives in the
// household, what they want to achieve, and which time is already taken.
type Input struct {
	WeekStart    time.Time
	Strategy     domain.Strategy
	Preferences  string
	Members      []domain.FamilyMember
	Goals        []domain.RecurringGoal
	FixedBlocks  []domain.TimeBlock
	ManualBlocks []domain.TimeBlock
}

// Generator produces candidate placements for a week. Implementations are
// non-deterministic and may fail; callers must treat the result as untrusted.
type Generator interface {
	Propose(ctx context.Context, in Input) ([]Proposal, error)
}

// Noop is a Generator that proposes nothing. Used when the LLM subsystem is
// disabled: reconciliation still materializes commitments and keeps manual
// blocks, it just gets no AI placements.
type Noop struct{}

func (Noop) Propose(context.Context, Input) ([]Proposal, error) {
	return nil, nil
}
