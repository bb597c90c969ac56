package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/profile"
)

func validProfileDTO() profile.UpsertDTO {
	return profile.UpsertDTO{
		Name:  "山田太郎",
		Email: "taro@example.com",
		Phone: "090-0000-0000",
	}
}

func TestProfileUpsertDTO_Valid(t *testing.T) {
	dto := validProfileDTO()
	details, ok := dto.Ok()
	require.True(t, ok)
	assert.Empty(t, details)
}

func TestProfileUpsertDTO_InvalidEmail(t *testing.T) {
	dto := validProfileDTO()
	dto.Email = "not-an-email"
	details, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "email", details[0].Field)
	assert.Equal(t, "有効なメールアドレスを入力してください", details[0].Message)
}

func TestProfileUpsertDTO_OptionalURLsMayBeEmpty(t *testing.T) {
	dto := validProfileDTO()
	dto.Website = ""
	dto.GithubURL = ""
	_, ok := dto.Ok()
	assert.True(t, ok)
}

func TestProfileUpsertDTO_MalformedURL(t *testing.T) {
	dto := validProfileDTO()
	dto.GithubURL = "github.com/taro"
	details, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "githubUrl", details[0].Field)
	assert.Equal(t, "有効なURLを入力してください", details[0].Message)
}
