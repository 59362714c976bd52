package domain

import (
	"fmt"
	"time"
)

// RecurringGoal is a time-unanchored demand for activity the generator
// attempts to place some number of times per week.
type RecurringGoal struct {
	ID                   string
	MemberID             string
	Name                 string
	FrequencyPerWeek     int // 1-14
	PreferredDurationMin int // 15-480
	PreferredTimes       []TimeOfDay
	Priority             GoalPriority
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (g *RecurringGoal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: goal name is required", ErrInvalidInput)
	}
	if g.MemberID == "" {
		return fmt.Errorf("%w: goal requires an owning member", ErrInvalidInput)
	}
	if g.FrequencyPerWeek < 1 || g.FrequencyPerWeek > 14 {
		return fmt.Errorf("%w: frequency per week must be 1-14, got %d", ErrInvalidInput, g.FrequencyPerWeek)
	}
	if g.PreferredDurationMin < 15 || g.PreferredDurationMin > 480 {
		return fmt.Errorf("%w: preferred duration must be 15-480 minutes, got %d", ErrInvalidInput, g.PreferredDurationMin)
	}
	for _, tod := range g.PreferredTimes {
		switch tod {
		case Morning, Afternoon, Evening:
		default:
			return fmt.Errorf("%w: unknown time of day %q", ErrInvalidInput, tod)
		}
	}
	switch g.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, g.Priority)
	}
	return nil
}
