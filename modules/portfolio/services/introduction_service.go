package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/introduction"
)

type IntroductionService struct {
	repo introduction.Repository
}

func NewIntroductionService(repo introduction.Repository) *IntroductionService {
	return &IntroductionService{repo: repo}
}

func (s *IntroductionService) GetAll(ctx context.Context) ([]introduction.Introduction, error) {
	return s.repo.GetAll(ctx)
}

func (s *IntroductionService) GetByID(ctx context.Context, id uuid.UUID) (introduction.Introduction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *IntroductionService) Create(ctx context.Context, dto *introduction.UpsertDTO) (introduction.Introduction, error) {
	return s.repo.Create(ctx, dto.ToEntity(uuid.Nil))
}

func (s *IntroductionService) Update(ctx context.Context, id uuid.UUID, dto *introduction.UpsertDTO) error {
	return s.repo.Update(ctx, dto.ToEntity(id))
}

func (s *IntroductionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
