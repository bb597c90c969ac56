package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	// GetFirst returns the profile shown on the public page.
	GetFirst(ctx context.Context) (Profile, error)
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	// Upsert creates the user's profile row or replaces its fields.
	Upsert(ctx context.Context, p Profile) (Profile, error)
}
