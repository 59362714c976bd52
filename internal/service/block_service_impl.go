package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearthplan/internal/domain"
	"hearthplan/internal/repository"
)

type blockService struct {
	blocks    repository.BlockRepo
	schedules repository.ScheduleRepo
}

func NewBlockService(blocks repository.BlockRepo, schedules repository.ScheduleRepo) BlockService {
	return &blockService{blocks: blocks, schedules: schedules}
}

// Create inserts a user-entered block. User-created blocks are always
// manual-origin; fixed and AI blocks only ever enter through regeneration.
func (s *blockService) Create(ctx context.Context, b *domain.TimeBlock) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Category == "" {
		b.Category = domain.CategoryOther
	}
	b.Origin = domain.OriginManual
	if err := b.Validate(); err != nil {
		return err
	}
	if _, err := s.schedules.GetByID(ctx, b.ScheduleID); err != nil {
		return err
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.blocks.Create(ctx, b)
}

func (s *blockService) GetByID(ctx context.Context, id string) (*domain.TimeBlock, error) {
	return s.blocks.GetByID(ctx, id)
}

func (s *blockService) ListBySchedule(ctx context.Context, scheduleID string) ([]domain.TimeBlock, error) {
	return s.blocks.ListBySchedule(ctx, scheduleID)
}

// Update edits a block in place. Editing claims the block for the user:
// whatever its origin was, it becomes manual and regeneration will no longer
// touch it.
func (s *blockService) Update(ctx context.Context, b *domain.TimeBlock) error {
	b.Origin = domain.OriginManual
	if err := b.Validate(); err != nil {
		return err
	}
	b.UpdatedAt = time.Now().UTC()
	return s.blocks.Update(ctx, b)
}

func (s *blockService) Delete(ctx context.Context, id string) error {
	return s.blocks.SoftDelete(ctx, id)
}
