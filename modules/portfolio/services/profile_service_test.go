package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/profile"
	"github.com/katzedaze/portfolio/modules/portfolio/infrastructure/persistence"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
)

func newProfileService() *services.ProfileService {
	return services.NewProfileService(persistence.NewInmemProfileRepository())
}

func TestProfileService_GetFirstWhenEmpty(t *testing.T) {
	svc := newProfileService()
	_, err := svc.GetFirst(context.Background())
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestProfileService_UpsertCreatesThenUpdates(t *testing.T) {
	svc := newProfileService()
	ctx := context.Background()

	created, err := svc.Upsert(ctx, "user-1", &profile.UpsertDTO{
		Name: "山田太郎", Email: "taro@example.com", Phone: "090-0000-0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "山田太郎", created.Name())

	updated, err := svc.Upsert(ctx, "user-1", &profile.UpsertDTO{
		Name: "山田次郎", Email: "jiro@example.com", Phone: "090-1111-1111",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, "山田次郎", updated.Name())

	got, err := svc.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "山田次郎", got.Name())
}

func TestProfileService_OneProfilePerUser(t *testing.T) {
	svc := newProfileService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "user-1", &profile.UpsertDTO{
		Name: "一人目", Email: "a@example.com", Phone: "1",
	})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "user-2", &profile.UpsertDTO{
		Name: "二人目", Email: "b@example.com", Phone: "2",
	})
	require.NoError(t, err)

	first, err := svc.GetFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, "一人目", first.Name())
}
