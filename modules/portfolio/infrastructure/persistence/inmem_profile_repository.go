package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/profile"
)

type InmemProfileRepository struct {
	storage *SafeMap[string, profile.Profile]
}

func NewInmemProfileRepository() *InmemProfileRepository {
	return &InmemProfileRepository{
		storage: NewSafeMap[string, profile.Profile](),
	}
}

func (r *InmemProfileRepository) GetFirst(ctx context.Context) (profile.Profile, error) {
	all := r.storage.Values()
	if len(all) == 0 {
		return profile.Profile{}, profile.ErrNotFound
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt().Before(all[j].CreatedAt())
	})
	return all[0], nil
}

func (r *InmemProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	p, found := r.storage.Get(userID)
	if !found {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *InmemProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	now := time.Now()
	id := uuid.New()
	createdAt := now
	if existing, found := r.storage.Get(p.UserID()); found {
		id = existing.ID()
		createdAt = existing.CreatedAt()
	}
	saved := profile.Hydrate(
		id, p.UserID(), p.Name(), p.Email(), p.Phone(),
		p.PostalCode(), p.Address(), p.Website(), p.GithubURL(), p.TwitterURL(), p.LinkedinURL(), p.Bio(), p.AvatarURL(),
		createdAt, now,
	)
	r.storage.Set(p.UserID(), saved)
	return saved, nil
}
