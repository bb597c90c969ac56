package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
)

type CompanyService struct {
	repo company.Repository
}

func NewCompanyService(repo company.Repository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) GetAll(ctx context.Context) ([]company.Company, error) {
	return s.repo.GetAll(ctx)
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CompanyService) Create(ctx context.Context, dto *company.UpsertDTO) (company.Company, error) {
	return s.repo.Create(ctx, dto.ToEntity(uuid.Nil))
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, dto *company.UpsertDTO) error {
	return s.repo.Update(ctx, dto.ToEntity(id))
}

// Delete removes the company. Projects that referenced it keep their rows,
// the schema sets their company_id to NULL.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
