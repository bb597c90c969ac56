package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/introduction"
)

type InmemIntroductionRepository struct {
	storage *SafeMap[uuid.UUID, introduction.Introduction]
}

func NewInmemIntroductionRepository() *InmemIntroductionRepository {
	return &InmemIntroductionRepository{
		storage: NewSafeMap[uuid.UUID, introduction.Introduction](),
	}
}

func (r *InmemIntroductionRepository) GetAll(ctx context.Context) ([]introduction.Introduction, error) {
	out := r.storage.Values()
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisplayOrder() < out[j].DisplayOrder()
	})
	return out, nil
}

func (r *InmemIntroductionRepository) GetByID(ctx context.Context, id uuid.UUID) (introduction.Introduction, error) {
	in, found := r.storage.Get(id)
	if !found {
		return introduction.Introduction{}, introduction.ErrNotFound
	}
	return in, nil
}

func (r *InmemIntroductionRepository) Create(ctx context.Context, in introduction.Introduction) (introduction.Introduction, error) {
	now := time.Now()
	created := introduction.Hydrate(uuid.New(), in.Title(), in.Content(), in.DisplayOrder(), now, now)
	r.storage.Set(created.ID(), created)
	return created, nil
}

func (r *InmemIntroductionRepository) Update(ctx context.Context, in introduction.Introduction) error {
	existing, found := r.storage.Get(in.ID())
	if !found {
		return introduction.ErrNotFound
	}
	updated := introduction.Hydrate(in.ID(), in.Title(), in.Content(), in.DisplayOrder(), existing.CreatedAt(), time.Now())
	r.storage.Set(in.ID(), updated)
	return nil
}

func (r *InmemIntroductionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, found := r.storage.Get(id); !found {
		return introduction.ErrNotFound
	}
	r.storage.Delete(id)
	return nil
}
