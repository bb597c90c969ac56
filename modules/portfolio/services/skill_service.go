package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/skill"
)

type SkillService struct {
	repo skill.Repository
}

func NewSkillService(repo skill.Repository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) GetAll(ctx context.Context) ([]skill.Skill, error) {
	return s.repo.GetAll(ctx)
}

func (s *SkillService) GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SkillService) Create(ctx context.Context, dto *skill.UpsertDTO) (skill.Skill, error) {
	return s.repo.Create(ctx, dto.ToEntity(uuid.Nil))
}

func (s *SkillService) Update(ctx context.Context, id uuid.UUID, dto *skill.UpsertDTO) error {
	return s.repo.Update(ctx, dto.ToEntity(id))
}

func (s *SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
