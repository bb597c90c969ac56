package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/project"
)

type ProjectService struct {
	repo project.Repository
}

func NewProjectService(repo project.Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) GetAll(ctx context.Context) ([]project.WithCompany, error) {
	return s.repo.GetAll(ctx)
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, dto *project.UpsertDTO) (project.Project, error) {
	return s.repo.Create(ctx, dto.ToEntity(uuid.Nil))
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, dto *project.UpsertDTO) error {
	return s.repo.Update(ctx, dto.ToEntity(id))
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
