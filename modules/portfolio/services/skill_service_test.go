package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/skill"
	"github.com/katzedaze/portfolio/modules/portfolio/infrastructure/persistence"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
)

func newSkillService() *services.SkillService {
	return services.NewSkillService(persistence.NewInmemSkillRepository())
}

func TestSkillService_CreateAndGet(t *testing.T) {
	svc := newSkillService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &skill.UpsertDTO{
		Name: "Go", Category: "backend", Proficiency: "上級", YearsOfExperience: 3.5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID())
	assert.False(t, created.CreatedAt().IsZero())

	got, err := svc.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Name())
	assert.Equal(t, 35, got.ExperienceTenths())
}

func TestSkillService_GetAllOrdersByDisplayOrderThenName(t *testing.T) {
	svc := newSkillService()
	ctx := context.Background()

	for _, d := range []skill.UpsertDTO{
		{Name: "TypeScript", Category: "frontend", Proficiency: "中級", DisplayOrder: 1},
		{Name: "Go", Category: "backend", Proficiency: "上級", DisplayOrder: 0},
		{Name: "AWS", Category: "infrastructure", Proficiency: "中級", DisplayOrder: 1},
	} {
		d := d
		_, err := svc.Create(ctx, &d)
		require.NoError(t, err)
	}

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Go", all[0].Name())
	assert.Equal(t, "AWS", all[1].Name())
	assert.Equal(t, "TypeScript", all[2].Name())
}

func TestSkillService_UpdateMissing(t *testing.T) {
	svc := newSkillService()
	err := svc.Update(context.Background(), uuid.New(), &skill.UpsertDTO{
		Name: "Go", Category: "backend", Proficiency: "上級",
	})
	assert.ErrorIs(t, err, skill.ErrNotFound)
}

func TestSkillService_Delete(t *testing.T) {
	svc := newSkillService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &skill.UpsertDTO{
		Name: "Go", Category: "backend", Proficiency: "上級",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID()))
	_, err = svc.GetByID(ctx, created.ID())
	assert.ErrorIs(t, err, skill.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID()), skill.ErrNotFound)
}
