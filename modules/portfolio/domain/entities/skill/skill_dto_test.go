package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/skill"
)

func validSkillDTO() skill.UpsertDTO {
	return skill.UpsertDTO{
		Name:              "Go",
		Category:          "backend",
		Proficiency:       "上級",
		YearsOfExperience: 3.5,
		DisplayOrder:      0,
	}
}

func TestSkillUpsertDTO_Valid(t *testing.T) {
	dto := validSkillDTO()
	details, ok := dto.Ok()
	require.True(t, ok)
	assert.Empty(t, details)
}

func TestSkillUpsertDTO_RequiredName(t *testing.T) {
	dto := validSkillDTO()
	dto.Name = "  "
	details, ok := dto.Ok()
	require.False(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "name", details[0].Field)
	assert.Equal(t, "スキル名は必須です", details[0].Message)
}

func TestSkillUpsertDTO_CategoryMustBeKnown(t *testing.T) {
	dto := validSkillDTO()
	dto.Category = "devops"
	details, ok := dto.Ok()
	require.False(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "category", details[0].Field)
	assert.Equal(t, "カテゴリを選択してください", details[0].Message)
}

func TestSkillUpsertDTO_ExperienceTenthStep(t *testing.T) {
	dto := validSkillDTO()
	dto.YearsOfExperience = 1.25
	details, ok := dto.Ok()
	require.False(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "yearsOfExperience", details[0].Field)
	assert.Equal(t, "経験年数は0.1刻みで入力してください", details[0].Message)

	dto.YearsOfExperience = 1.2
	_, ok = dto.Ok()
	assert.True(t, ok)
}

func TestSkillUpsertDTO_ExperienceBounds(t *testing.T) {
	dto := validSkillDTO()
	dto.YearsOfExperience = -0.1
	details, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "経験年数は0以上の値を入力してください", details[0].Message)

	dto = validSkillDTO()
	dto.YearsOfExperience = 50.1
	details, ok = dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "経験年数は50年以下で入力してください", details[0].Message)
}

func TestSkillUpsertDTO_NormalizeTrims(t *testing.T) {
	dto := validSkillDTO()
	dto.Name = "  Go  "
	dto.Proficiency = " 上級 "
	_, ok := dto.Ok()
	require.True(t, ok)
	assert.Equal(t, "Go", dto.Name)
	assert.Equal(t, "上級", dto.Proficiency)
}

func TestSkillUpsertDTO_NegativeDisplayOrder(t *testing.T) {
	dto := validSkillDTO()
	dto.DisplayOrder = -1
	details, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "displayOrder", details[0].Field)
}
