package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearthplan/internal/domain"
	"hearthplan/internal/repository"
)

type memberService struct {
	members repository.MemberRepo
}

func NewMemberService(members repository.MemberRepo) MemberService {
	return &memberService{members: members}
}

func (s *memberService) Create(ctx context.Context, m *domain.FamilyMember) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Role == "" {
		m.Role = domain.RolePrimary
	}
	if err := m.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.members.Create(ctx, m)
}

func (s *memberService) GetByID(ctx context.Context, id string) (*domain.FamilyMember, error) {
	return s.members.GetByID(ctx, id)
}

func (s *memberService) List(ctx context.Context) ([]domain.FamilyMember, error) {
	return s.members.List(ctx)
}

func (s *memberService) Update(ctx context.Context, m *domain.FamilyMember) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.UpdatedAt = time.Now().UTC()
	return s.members.Update(ctx, m)
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	return s.members.Delete(ctx, id)
}
