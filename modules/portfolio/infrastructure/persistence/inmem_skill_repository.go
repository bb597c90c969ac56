package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/skill"
)

// InmemSkillRepository keeps skills in memory. Used by service tests.
type InmemSkillRepository struct {
	storage *SafeMap[uuid.UUID, skill.Skill]
}

func NewInmemSkillRepository() *InmemSkillRepository {
	return &InmemSkillRepository{
		storage: NewSafeMap[uuid.UUID, skill.Skill](),
	}
}

func (r *InmemSkillRepository) GetAll(ctx context.Context) ([]skill.Skill, error) {
	out := r.storage.Values()
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder() != out[j].DisplayOrder() {
			return out[i].DisplayOrder() < out[j].DisplayOrder()
		}
		return out[i].Name() < out[j].Name()
	})
	return out, nil
}

func (r *InmemSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	s, found := r.storage.Get(id)
	if !found {
		return skill.Skill{}, skill.ErrNotFound
	}
	return s, nil
}

func (r *InmemSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	now := time.Now()
	created := skill.Hydrate(uuid.New(), s.Name(), s.Category(), s.Proficiency(), s.ExperienceTenths(), s.DisplayOrder(), now, now)
	r.storage.Set(created.ID(), created)
	return created, nil
}

func (r *InmemSkillRepository) Update(ctx context.Context, s skill.Skill) error {
	existing, found := r.storage.Get(s.ID())
	if !found {
		return skill.ErrNotFound
	}
	updated := skill.Hydrate(s.ID(), s.Name(), s.Category(), s.Proficiency(), s.ExperienceTenths(), s.DisplayOrder(), existing.CreatedAt(), time.Now())
	r.storage.Set(s.ID(), updated)
	return nil
}

func (r *InmemSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, found := r.storage.Get(id); !found {
		return skill.ErrNotFound
	}
	r.storage.Delete(id)
	return nil
}
