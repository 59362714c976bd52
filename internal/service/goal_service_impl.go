package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearthplan/internal/domain"
	"hearthplan/internal/repository"
)

type goalService struct {
	goals   repository.GoalRepo
	members repository.MemberRepo
}

func NewGoalService(goals repository.GoalRepo, members repository.MemberRepo) GoalService {
	return &goalService{goals: goals, members: members}
}

func (s *goalService) Create(ctx context.Context, g *domain.RecurringGoal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Priority == "" {
		g.Priority = domain.PriorityMedium
	}
	if err := g.Validate(); err != nil {
		return err
	}
	// Goals must point at a real member.
	if _, err := s.members.GetByID(ctx, g.MemberID); err != nil {
		return err
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.RecurringGoal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) List(ctx context.Context) ([]domain.RecurringGoal, error) {
	return s.goals.List(ctx)
}

func (s *goalService) ListByMember(ctx context.Context, memberID string) ([]domain.RecurringGoal, error) {
	return s.goals.ListByMember(ctx, memberID)
}

func (s *goalService) Update(ctx context.Context, g *domain.RecurringGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	g.UpdatedAt = time.Now().UTC()
	return s.goals.Update(ctx, g)
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
