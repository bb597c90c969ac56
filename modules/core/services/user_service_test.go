package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
	"github.com/katzedaze/portfolio/modules/core/infrastructure/persistence"
	"github.com/katzedaze/portfolio/modules/core/services"
)

func newUserFixture(t *testing.T, emails ...string) (*services.UserService, []user.User) {
	t.Helper()
	repo := persistence.NewInmemUserRepository()
	svc := services.NewUserService(repo)

	created := make([]user.User, 0, len(emails))
	for _, email := range emails {
		u, err := user.New(uuid.NewString(), email, "User", "password123")
		require.NoError(t, err)
		u, err = repo.Create(context.Background(), u)
		require.NoError(t, err)
		created = append(created, u)
	}
	return svc, created
}

func TestUserService_ChangeEmail(t *testing.T) {
	svc, users := newUserFixture(t, "old@example.com")
	ctx := context.Background()

	require.NoError(t, svc.ChangeEmail(ctx, users[0].ID(), "new@example.com"))

	got, err := svc.GetByID(ctx, users[0].ID())
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email())
}

func TestUserService_ChangeEmailToOwnAddress(t *testing.T) {
	svc, users := newUserFixture(t, "me@example.com")
	assert.NoError(t, svc.ChangeEmail(context.Background(), users[0].ID(), "me@example.com"))
}

func TestUserService_ChangeEmailTaken(t *testing.T) {
	svc, users := newUserFixture(t, "a@example.com", "b@example.com")
	err := svc.ChangeEmail(context.Background(), users[0].ID(), "b@example.com")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestUserService_ChangePassword(t *testing.T) {
	svc, users := newUserFixture(t, "me@example.com")
	ctx := context.Background()

	require.NoError(t, svc.ChangePassword(ctx, users[0].ID(), "password123", "newpassword"))

	got, err := svc.GetByID(ctx, users[0].ID())
	require.NoError(t, err)
	assert.NoError(t, got.CheckPassword("newpassword"))
	assert.Error(t, got.CheckPassword("password123"))
}

func TestUserService_ChangePasswordWrongCurrent(t *testing.T) {
	svc, users := newUserFixture(t, "me@example.com")
	err := svc.ChangePassword(context.Background(), users[0].ID(), "wrong", "newpassword")
	assert.ErrorIs(t, err, user.ErrInvalidPassword)
}
