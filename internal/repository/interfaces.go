package repository

import (
	"context"
	"time"

	"hearthplan/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, m *domain.FamilyMember) error
	GetByID(ctx context.Context, id string) (*domain.FamilyMember, error)
	List(ctx context.Context) ([]domain.FamilyMember, error)
	Update(ctx context.Context, m *domain.FamilyMember) error
	Delete(ctx context.Context, id string) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.RecurringGoal) error
	GetByID(ctx context.Context, id string) (*domain.RecurringGoal, error)
	List(ctx context.Context) ([]domain.RecurringGoal, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.RecurringGoal, error)
	Update(ctx context.Context, g *domain.RecurringGoal) error
	Delete(ctx context.Context, id string) error
}

type CommitmentRepo interface {
	Create(ctx context.Context, c *domain.RecurringCommitment) error
	GetByID(ctx context.Context, id string) (*domain.RecurringCommitment, error)
	List(ctx context.Context) ([]domain.RecurringCommitment, error)
	Update(ctx context.Context, c *domain.RecurringCommitment) error
	Delete(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	// GetByOwnerWeek finds the schedule for (ownerID, weekStart), or
	// domain.ErrNotFound if none exists yet.
	GetByOwnerWeek(ctx context.Context, ownerID string, weekStart time.Time) (*domain.Schedule, error)
	Touch(ctx context.Context, id string) error
}

type BlockRepo interface {
	Create(ctx context.Context, b *domain.TimeBlock) error
	CreateMany(ctx context.Context, blocks []*domain.TimeBlock) error
	GetByID(ctx context.Context, id string) (*domain.TimeBlock, error)
	// ListBySchedule returns the live (not soft-deleted) blocks of a schedule,
	// ordered by start time.
	ListBySchedule(ctx context.Context, scheduleID string) ([]domain.TimeBlock, error)
	// Update replaces title/category/interval/owner/shared flag/goal link in
	// one statement.
	Update(ctx context.Context, b *domain.TimeBlock) error
	SoftDelete(ctx context.Context, id string) error
	SoftDeleteMany(ctx context.Context, ids []string) error
}
