package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hearthplan/internal/contract"
	"hearthplan/internal/domain"
	"hearthplan/internal/grid"
	"hearthplan/internal/reconcile"
	"hearthplan/internal/repository"
	"hearthplan/internal/timeutil"
)

type scheduleService struct {
	engine    *reconcile.Engine
	schedules repository.ScheduleRepo
	blocks    repository.BlockRepo
	members   repository.MemberRepo
}

func NewScheduleService(
	engine *reconcile.Engine,
	schedules repository.ScheduleRepo,
	blocks repository.BlockRepo,
	members repository.MemberRepo,
) ScheduleService {
	return &scheduleService{
		engine:    engine,
		schedules: schedules,
		blocks:    blocks,
		members:   members,
	}
}

func (s *scheduleService) Generate(ctx context.Context, req contract.GenerateScheduleRequest) (*contract.GenerateScheduleResponse, error) {
	if req.Strategy == "" {
		req.Strategy = domain.StrategyBalanced
	}
	if !domain.ValidStrategies[string(req.Strategy)] {
		return nil, fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidInput, req.Strategy)
	}
	return s.engine.GenerateWeek(ctx, req)
}

func (s *scheduleService) EnsureWeek(ctx context.Context, ownerID string, weekStart time.Time) (*domain.Schedule, error) {
	if !timeutil.IsMonday(weekStart) {
		return nil, fmt.Errorf("%w: week start %s is not a Monday",
			domain.ErrInvalidInput, weekStart.Format("2006-01-02"))
	}
	weekStart = timeutil.StartOfDay(weekStart)

	schedule, err := s.schedules.GetByOwnerWeek(ctx, ownerID, weekStart)
	if err == nil {
		return schedule, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	schedule = &domain.Schedule{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		WeekStart: weekStart,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) Layout(ctx context.Context, ownerID string, weekStart time.Time, filter grid.Filter) (*grid.Grid, error) {
	if !timeutil.IsMonday(weekStart) {
		return nil, fmt.Errorf("%w: week start %s is not a Monday",
			domain.ErrInvalidInput, weekStart.Format("2006-01-02"))
	}
	weekStart = timeutil.StartOfDay(weekStart)

	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}

	var blocks []domain.TimeBlock
	schedule, err := s.schedules.GetByOwnerWeek(ctx, ownerID, weekStart)
	switch {
	case err == nil:
		blocks, err = s.blocks.ListBySchedule(ctx, schedule.ID)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrNotFound):
		// Never generated and no manual blocks: lay out an empty week.
	default:
		return nil, err
	}

	g := grid.LayoutWeek(blocks, weekStart, members)
	g.ApplyFilter(filter)
	return g, nil
}
