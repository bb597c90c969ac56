package project_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/project"
)

func strPtr(s string) *string { return &s }

func validProjectDTO() project.UpsertDTO {
	return project.UpsertDTO{
		Title:        "ポートフォリオサイト",
		StartDate:    "2024-01-01",
		EndDate:      strPtr("2024-06-30"),
		Technologies: []string{"Go", "PostgreSQL"},
		Description:  "個人ポートフォリオの構築",
		DisplayOrder: 0,
	}
}

func TestProjectUpsertDTO_Valid(t *testing.T) {
	dto := validProjectDTO()
	details, ok := dto.Ok()
	require.True(t, ok)
	assert.Empty(t, details)
}

func TestProjectUpsertDTO_TechnologiesRequired(t *testing.T) {
	dto := validProjectDTO()
	dto.Technologies = nil
	details, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "technologies", details[0].Field)
	assert.Equal(t, "技術スタックは最低1つ必要です", details[0].Message)
}

func TestProjectUpsertDTO_NormalizeDropsBlankTechnologies(t *testing.T) {
	dto := validProjectDTO()
	dto.Technologies = []string{" Go ", "", "  "}
	_, ok := dto.Ok()
	require.True(t, ok)
	assert.Equal(t, []string{"Go"}, dto.Technologies)
}

func TestProjectUpsertDTO_AllBlankTechnologiesFails(t *testing.T) {
	dto := validProjectDTO()
	dto.Technologies = []string{"", "  "}
	_, ok := dto.Ok()
	assert.False(t, ok)
}

func TestProjectUpsertDTO_CompanyIDMustBeUUID(t *testing.T) {
	dto := validProjectDTO()
	dto.CompanyID = strPtr("not-a-uuid")
	details, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "companyId", details[0].Field)
	assert.Equal(t, "企業IDの形式が不正です", details[0].Message)
}

func TestProjectUpsertDTO_EmptyCompanyIDMeansNone(t *testing.T) {
	dto := validProjectDTO()
	dto.CompanyID = strPtr("  ")
	_, ok := dto.Ok()
	require.True(t, ok)
	assert.Nil(t, dto.ToEntity(uuid.Nil).CompanyID())
}

func TestProjectUpsertDTO_StartDateRequired(t *testing.T) {
	dto := validProjectDTO()
	dto.StartDate = ""
	details, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "開始日は必須です", details[0].Message)
}

func TestProjectUpsertDTO_EndBeforeStart(t *testing.T) {
	dto := validProjectDTO()
	dto.EndDate = strPtr("2023-12-31")
	details, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "endDate", details[0].Field)
	assert.Equal(t, "終了日は開始日以降の日付を指定してください", details[0].Message)
}

func TestProjectUpsertDTO_OngoingProject(t *testing.T) {
	dto := validProjectDTO()
	dto.EndDate = nil
	_, ok := dto.Ok()
	require.True(t, ok)
	assert.Nil(t, dto.ToEntity(uuid.Nil).EndDate())
}
