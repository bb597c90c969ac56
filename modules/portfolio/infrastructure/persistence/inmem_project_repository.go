package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/project"
)

// InmemProjectRepository keeps projects in memory and resolves the company
// join at read time. A deleted company shows up as a nil join, matching the
// ON DELETE SET NULL behavior of the SQL schema.
type InmemProjectRepository struct {
	storage   *SafeMap[uuid.UUID, project.Project]
	companies company.Repository
}

func NewInmemProjectRepository(companies company.Repository) *InmemProjectRepository {
	return &InmemProjectRepository{
		storage:   NewSafeMap[uuid.UUID, project.Project](),
		companies: companies,
	}
}

func (r *InmemProjectRepository) GetAll(ctx context.Context) ([]project.WithCompany, error) {
	all := r.storage.Values()
	sort.Slice(all, func(i, j int) bool {
		if all[i].DisplayOrder() != all[j].DisplayOrder() {
			return all[i].DisplayOrder() < all[j].DisplayOrder()
		}
		return all[i].StartDate().After(all[j].StartDate())
	})

	out := make([]project.WithCompany, 0, len(all))
	for _, p := range all {
		var joined *company.Company
		if p.CompanyID() != nil {
			if c, err := r.companies.GetByID(ctx, *p.CompanyID()); err == nil {
				joined = &c
			}
		}
		out = append(out, project.WithCompany{Project: p, Company: joined})
	}
	return out, nil
}

func (r *InmemProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	p, found := r.storage.Get(id)
	if !found {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (r *InmemProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	now := time.Now()
	created := project.Hydrate(
		uuid.New(), p.CompanyID(), p.Title(), p.StartDate(), p.EndDate(), p.Technologies(),
		p.Description(), p.Responsibilities(), p.Achievements(), p.DisplayOrder(), now, now,
	)
	r.storage.Set(created.ID(), created)
	return created, nil
}

func (r *InmemProjectRepository) Update(ctx context.Context, p project.Project) error {
	existing, found := r.storage.Get(p.ID())
	if !found {
		return project.ErrNotFound
	}
	updated := project.Hydrate(
		p.ID(), p.CompanyID(), p.Title(), p.StartDate(), p.EndDate(), p.Technologies(),
		p.Description(), p.Responsibilities(), p.Achievements(), p.DisplayOrder(), existing.CreatedAt(), time.Now(),
	)
	r.storage.Set(p.ID(), updated)
	return nil
}

func (r *InmemProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, found := r.storage.Get(id); !found {
		return project.ErrNotFound
	}
	r.storage.Delete(id)
	return nil
}
