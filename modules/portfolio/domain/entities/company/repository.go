package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("company not found")

type Repository interface {
	// GetAll returns companies ordered by displayOrder, then name.
	GetAll(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	Create(ctx context.Context, c Company) (Company, error)
	Update(ctx context.Context, c Company) error
	// Delete clears the company reference on dependent projects through
	// the schema's ON DELETE SET NULL.
	Delete(ctx context.Context, id uuid.UUID) error
}
