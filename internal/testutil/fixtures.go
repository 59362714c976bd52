package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"hearthplan/internal/domain"
)

var fixtureSeq atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, fixtureSeq.Add(1))
}

// Monday is a known Monday used as a week anchor in tests.
var Monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }

// MemberOption mutates a fixture member.
type MemberOption func(*domain.FamilyMember)

// WithRole sets the member role.
func WithRole(role domain.MemberRole) MemberOption {
	return func(m *domain.FamilyMember) { m.Role = role }
}

// WithAge sets the member age.
func WithAge(age int) MemberOption {
	return func(m *domain.FamilyMember) { m.Age = &age }
}

// NewTestMember creates a valid adult member with a unique id.
func NewTestMember(name string, opts ...MemberOption) *domain.FamilyMember {
	now := time.Now().UTC()
	m := &domain.FamilyMember{
		ID:        nextID("member"),
		Name:      name,
		Role:      domain.RolePrimary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewTestGoal creates a valid goal owned by memberID.
func NewTestGoal(memberID, name string) *domain.RecurringGoal {
	now := time.Now().UTC()
	return &domain.RecurringGoal{
		ID:                   nextID("goal"),
		MemberID:             memberID,
		Name:                 name,
		FrequencyPerWeek:     3,
		PreferredDurationMin: 45,
		Priority:             domain.PriorityMedium,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// NewTestCommitment creates a valid owned commitment.
func NewTestCommitment(ownerID *string, title string, day int, start, end string) *domain.RecurringCommitment {
	now := time.Now().UTC()
	return &domain.RecurringCommitment{
		ID:        nextID("commitment"),
		OwnerID:   ownerID,
		Title:     title,
		Category:  domain.CategoryWork,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		IsShared:  ownerID == nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestBlock creates a block on the schedule with the given owner and
// interval, expressed as day (1=Monday) plus clock hours.
func NewTestBlock(scheduleID string, ownerID *string, origin domain.BlockOrigin, day, startH, endH int) *domain.TimeBlock {
	now := time.Now().UTC()
	base := Monday.AddDate(0, 0, day-1)
	return &domain.TimeBlock{
		ID:         nextID("block"),
		ScheduleID: scheduleID,
		Title:      "Block",
		Category:   domain.CategoryActivity,
		Start:      base.Add(time.Duration(startH) * time.Hour),
		End:        base.Add(time.Duration(endH) * time.Hour),
		OwnerID:    ownerID,
		Origin:     origin,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewTestSchedule creates a schedule for ownerID anchored at Monday.
func NewTestSchedule(ownerID string) *domain.Schedule {
	now := time.Now().UTC()
	return &domain.Schedule{
		ID:        nextID("schedule"),
		OwnerID:   ownerID,
		WeekStart: Monday,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
