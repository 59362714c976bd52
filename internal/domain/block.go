package domain

import (
	"fmt"
	"time"

	"hearthplan/internal/timeutil"
)

// TimeBlock is a scheduled activity occupying a contiguous half-open
// interval [Start, End) within one week's schedule.
type TimeBlock struct {
	ID           string
	ScheduleID   string
	Title        string
	Category     BlockCategory
	Start        time.Time
	End          time.Time
	OwnerID      *string // nil for shared or unattributed blocks
	IsShared     bool
	OriginGoalID *string // informational back-reference only
	Origin       BlockOrigin
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Validate checks the structural invariants of a block supplied by a caller.
// Generator output is filtered instead, never validated through here.
func (b *TimeBlock) Validate() error {
	if b.Title == "" {
		return fmt.Errorf("%w: block title is required", ErrInvalidInput)
	}
	if !b.End.After(b.Start) {
		return fmt.Errorf("%w: block end must be after start", ErrInvalidInput)
	}
	if b.IsShared && b.OwnerID != nil {
		return fmt.Errorf("%w: shared block cannot have an owner", ErrInvalidInput)
	}
	if !ValidBlockCategories[string(b.Category)] {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, b.Category)
	}
	return nil
}

// Overlaps reports whether the intervals of b and other intersect.
func (b *TimeBlock) Overlaps(other *TimeBlock) bool {
	return timeutil.Overlaps(b.Start, b.End, other.Start, other.End)
}

// ConflictsWith reports whether b and other violate the single-owner
// overlap invariant: same non-nil owner, neither shared, intersecting
// intervals. Shared blocks never conflict with anything.
func (b *TimeBlock) ConflictsWith(other *TimeBlock) bool {
	if b.IsShared || other.IsShared {
		return false
	}
	if b.OwnerID == nil || other.OwnerID == nil {
		return false
	}
	if *b.OwnerID != *other.OwnerID {
		return false
	}
	return b.Overlaps(other)
}

// Day returns the ISO day number (1=Monday..7=Sunday) the block starts on.
func (b *TimeBlock) Day() int {
	return timeutil.ISODay(b.Start)
}
