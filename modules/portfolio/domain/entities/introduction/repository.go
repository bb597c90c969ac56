package introduction

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("introduction not found")

type Repository interface {
	// GetAll returns introductions ordered by displayOrder.
	GetAll(ctx context.Context) ([]Introduction, error)
	GetByID(ctx context.Context, id uuid.UUID) (Introduction, error)
	Create(ctx context.Context, i Introduction) (Introduction, error)
	Update(ctx context.Context, i Introduction) error
	Delete(ctx context.Context, id uuid.UUID) error
}
