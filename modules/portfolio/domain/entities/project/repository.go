package project

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
)

var ErrNotFound = errors.New("project not found")

// WithCompany pairs a project with its joined company, when one is set.
type WithCompany struct {
	Project Project
	Company *company.Company
}

type Repository interface {
	// GetAll returns projects ordered by displayOrder, then startDate
	// descending, with the referenced company joined in.
	GetAll(ctx context.Context) ([]WithCompany, error)
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}
