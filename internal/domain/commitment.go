package domain

import (
	"fmt"
	"time"

	"hearthplan/internal/timeutil"
)

// RecurringCommitment is a fixed-position weekly obligation. It always
// materializes into exactly one block per week, unless a manual block for
// the same owner claims the slot first.
type RecurringCommitment struct {
	ID        string
	OwnerID   *string
	Title     string
	Category  BlockCategory
	DayOfWeek int    // 1=Monday..7=Sunday
	StartTime string // "HH:MM", no date
	EndTime   string // "HH:MM", no date
	IsShared  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *RecurringCommitment) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: commitment title is required", ErrInvalidInput)
	}
	if c.DayOfWeek < 1 || c.DayOfWeek > 7 {
		return fmt.Errorf("%w: day of week must be 1-7, got %d", ErrInvalidInput, c.DayOfWeek)
	}
	start, err := timeutil.ParseClock(c.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := timeutil.ParseClock(c.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if end <= start {
		return fmt.Errorf("%w: commitment end must be after start", ErrInvalidInput)
	}
	if c.IsShared && c.OwnerID != nil {
		return fmt.Errorf("%w: shared commitment cannot have an owner", ErrInvalidInput)
	}
	if !ValidBlockCategories[string(c.Category)] {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, c.Category)
	}
	return nil
}

// Materialize anchors the commitment onto the week starting at weekStart,
// producing a concrete fixed-origin block. The block carries no ID or
// schedule binding; the reconciliation engine assigns those.
func (c *RecurringCommitment) Materialize(weekStart time.Time) (TimeBlock, error) {
	if err := c.Validate(); err != nil {
		return TimeBlock{}, err
	}
	startMin, _ := timeutil.ParseClock(c.StartTime)
	endMin, _ := timeutil.ParseClock(c.EndTime)

	return TimeBlock{
		Title:    c.Title,
		Category: c.Category,
		Start:    timeutil.OnDay(weekStart, c.DayOfWeek, startMin),
		End:      timeutil.OnDay(weekStart, c.DayOfWeek, endMin),
		OwnerID:  c.OwnerID,
		IsShared: c.IsShared,
		Origin:   OriginFixed,
	}, nil
}
