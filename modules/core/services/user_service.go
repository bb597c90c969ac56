package services

import (
	"context"
	"errors"

	"github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
)

var ErrEmailTaken = errors.New("email already in use")

type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(ctx context.Context, id string) (user.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, u user.User) (user.User, error) {
	return s.users.Create(ctx, u)
}

// ChangeEmail rejects addresses already used by another account.
func (s *UserService) ChangeEmail(ctx context.Context, userID, newEmail string) error {
	existing, err := s.users.GetByEmail(ctx, newEmail)
	if err == nil && existing.ID() != userID {
		return ErrEmailTaken
	}
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.users.Update(ctx, u.WithEmail(newEmail))
}

// ChangePassword verifies the current password before re-hashing.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.CheckPassword(currentPassword); err != nil {
		return err
	}
	updated, err := u.WithPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.Update(ctx, updated)
}
