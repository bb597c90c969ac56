package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
)

type InmemCompanyRepository struct {
	storage *SafeMap[uuid.UUID, company.Company]
}

func NewInmemCompanyRepository() *InmemCompanyRepository {
	return &InmemCompanyRepository{
		storage: NewSafeMap[uuid.UUID, company.Company](),
	}
}

func (r *InmemCompanyRepository) GetAll(ctx context.Context) ([]company.Company, error) {
	out := r.storage.Values()
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder() != out[j].DisplayOrder() {
			return out[i].DisplayOrder() < out[j].DisplayOrder()
		}
		return out[i].Name() < out[j].Name()
	})
	return out, nil
}

func (r *InmemCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	c, found := r.storage.Get(id)
	if !found {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (r *InmemCompanyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	now := time.Now()
	created := company.Hydrate(uuid.New(), c.Name(), c.Industry(), c.Description(), c.JoinDate(), c.LeaveDate(), c.DisplayOrder(), now, now)
	r.storage.Set(created.ID(), created)
	return created, nil
}

func (r *InmemCompanyRepository) Update(ctx context.Context, c company.Company) error {
	existing, found := r.storage.Get(c.ID())
	if !found {
		return company.ErrNotFound
	}
	updated := company.Hydrate(c.ID(), c.Name(), c.Industry(), c.Description(), c.JoinDate(), c.LeaveDate(), c.DisplayOrder(), existing.CreatedAt(), time.Now())
	r.storage.Set(c.ID(), updated)
	return nil
}

func (r *InmemCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, found := r.storage.Get(id); !found {
		return company.ErrNotFound
	}
	r.storage.Delete(id)
	return nil
}
