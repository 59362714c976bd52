package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearthplan/internal/domain"
	"hearthplan/internal/repository"
)

type commitmentService struct {
	commitments repository.CommitmentRepo
	members     repository.MemberRepo
}

func NewCommitmentService(commitments repository.CommitmentRepo, members repository.MemberRepo) CommitmentService {
	return &commitmentService{commitments: commitments, members: members}
}

func (s *commitmentService) Create(ctx context.Context, c *domain.RecurringCommitment) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Category == "" {
		c.Category = domain.CategoryOther
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OwnerID != nil {
		if _, err := s.members.GetByID(ctx, *c.OwnerID); err != nil {
			return err
		}
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.commitments.Create(ctx, c)
}

func (s *commitmentService) GetByID(ctx context.Context, id string) (*domain.RecurringCommitment, error) {
	return s.commitments.GetByID(ctx, id)
}

func (s *commitmentService) List(ctx context.Context) ([]domain.RecurringCommitment, error) {
	return s.commitments.List(ctx)
}

func (s *commitmentService) Update(ctx context.Context, c *domain.RecurringCommitment) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.commitments.Update(ctx, c)
}

func (s *commitmentService) Delete(ctx context.Context, id string) error {
	return s.commitments.Delete(ctx, id)
}
