package service

import (
	"context"
	"time"

	"hearthplan/internal/contract"
	"hearthplan/internal/domain"
	"hearthplan/internal/grid"
)

type MemberService interface {
	Create(ctx context.Context, m *domain.FamilyMember) error
	GetByID(ctx context.Context, id string) (*domain.FamilyMember, error)
	List(ctx context.Context) ([]domain.FamilyMember, error)
	Update(ctx context.Context, m *domain.FamilyMember) error
	Delete(ctx context.Context, id string) error
}

type GoalService interface {
	Create(ctx context.Context, g *domain.RecurringGoal) error
	GetByID(ctx context.Context, id string) (*domain.RecurringGoal, error)
	List(ctx context.Context) ([]domain.RecurringGoal, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.RecurringGoal, error)
	Update(ctx context.Context, g *domain.RecurringGoal) error
	Delete(ctx context.Context, id string) error
}

type CommitmentService interface {
	Create(ctx context.Context, c *domain.RecurringCommitment) error
	GetByID(ctx context.Context, id string) (*domain.RecurringCommitment, error)
	List(ctx context.Context) ([]domain.RecurringCommitment, error)
	Update(ctx context.Context, c *domain.RecurringCommitment) error
	Delete(ctx context.Context, id string) error
}

type BlockService interface {
	Create(ctx context.Context, b *domain.TimeBlock) error
	GetByID(ctx context.Context, id string) (*domain.TimeBlock, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]domain.TimeBlock, error)
	Update(ctx context.Context, b *domain.TimeBlock) error
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	Generate(ctx context.Context, req contract.GenerateScheduleRequest) (*contract.GenerateScheduleResponse, error)
	// EnsureWeek returns the schedule row for (ownerID, weekStart), creating
	// it if absent. Manual blocks need a schedule before any generation runs.
	EnsureWeek(ctx context.Context, ownerID string, weekStart time.Time) (*domain.Schedule, error)
	// Layout renders the stored week as a grid. A week with no schedule yet
	// lays out empty.
	Layout(ctx context.Context, ownerID string, weekStart time.Time, filter grid.Filter) (*grid.Grid, error)
}
