package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/project"
	"github.com/katzedaze/portfolio/modules/portfolio/infrastructure/persistence"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
)

func strPtr(s string) *string { return &s }

func newProjectFixture(t *testing.T) (*services.ProjectService, *services.CompanyService) {
	t.Helper()
	companies := persistence.NewInmemCompanyRepository()
	return services.NewProjectService(persistence.NewInmemProjectRepository(companies)),
		services.NewCompanyService(companies)
}

func projectDTO(title, start string) *project.UpsertDTO {
	return &project.UpsertDTO{
		Title:        title,
		StartDate:    start,
		Technologies: []string{"Go"},
		Description:  "説明",
	}
}

func TestProjectService_GetAllJoinsCompany(t *testing.T) {
	projects, companies := newProjectFixture(t)
	ctx := context.Background()

	c, err := companies.Create(ctx, &company.UpsertDTO{Name: "株式会社サンプル"})
	require.NoError(t, err)

	dto := projectDTO("社内ツール", "2024-01-01")
	dto.CompanyID = strPtr(c.ID().String())
	_, ok := dto.Ok()
	require.True(t, ok)
	_, err = projects.Create(ctx, dto)
	require.NoError(t, err)

	all, err := projects.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Company)
	assert.Equal(t, "株式会社サンプル", all[0].Company.Name())
}

func TestProjectService_DeletedCompanyLeavesProjectUnassigned(t *testing.T) {
	projects, companies := newProjectFixture(t)
	ctx := context.Background()

	c, err := companies.Create(ctx, &company.UpsertDTO{Name: "株式会社サンプル"})
	require.NoError(t, err)

	dto := projectDTO("社内ツール", "2024-01-01")
	dto.CompanyID = strPtr(c.ID().String())
	_, ok := dto.Ok()
	require.True(t, ok)
	_, err = projects.Create(ctx, dto)
	require.NoError(t, err)

	require.NoError(t, companies.Delete(ctx, c.ID()))

	all, err := projects.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Company)
}

func TestProjectService_OrderIsDisplayOrderThenNewestStart(t *testing.T) {
	projects, _ := newProjectFixture(t)
	ctx := context.Background()

	for _, d := range []*project.UpsertDTO{
		projectDTO("古い", "2020-01-01"),
		projectDTO("新しい", "2024-01-01"),
	} {
		_, ok := d.Ok()
		require.True(t, ok)
		_, err := projects.Create(ctx, d)
		require.NoError(t, err)
	}

	all, err := projects.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "新しい", all[0].Project.Title())
	assert.Equal(t, "古い", all[1].Project.Title())
}

func TestProjectService_UpdateMissing(t *testing.T) {
	projects, _ := newProjectFixture(t)
	dto := projectDTO("x", "2024-01-01")
	_, ok := dto.Ok()
	require.True(t, ok)
	err := projects.Update(context.Background(), uuid.New(), dto)
	assert.ErrorIs(t, err, project.ErrNotFound)
}
