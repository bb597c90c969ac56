package services

import (
	"context"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/profile"
)

type ProfileService struct {
	repo profile.Repository
}

func NewProfileService(repo profile.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetFirst returns the profile rendered on the public page.
func (s *ProfileService) GetFirst(ctx context.Context) (profile.Profile, error) {
	return s.repo.GetFirst(ctx)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *ProfileService) Upsert(ctx context.Context, userID string, dto *profile.UpsertDTO) (profile.Profile, error) {
	return s.repo.Upsert(ctx, dto.ToEntity(userID))
}
