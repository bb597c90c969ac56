package skill

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("skill not found")

type Repository interface {
	// GetAll returns skills ordered by displayOrder, then name.
	GetAll(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (Skill, error)
	Create(ctx context.Context, s Skill) (Skill, error)
	Update(ctx context.Context, s Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}
