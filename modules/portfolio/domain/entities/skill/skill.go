package skill

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryFrontend       Category = "frontend"
	CategoryBackend        Category = "backend"
	CategoryInfrastructure Category = "infrastructure"
	CategoryOthers         Category = "others"
)

// Skill is one entry of the technology stack. Experience is stored in tenths
// of a year so 0.1-step values survive the round-trip through an integer
// column.
type Skill struct {
	id               uuid.UUID
	name             string
	category         Category
	proficiency      string
	experienceTenths int
	displayOrder     int
	createdAt        time.Time
	updatedAt        time.Time
}

func New(name string, category Category, proficiency string, experienceTenths, displayOrder int) Skill {
	return Skill{
		name:             strings.TrimSpace(name),
		category:         category,
		proficiency:      strings.TrimSpace(proficiency),
		experienceTenths: experienceTenths,
		displayOrder:     displayOrder,
	}
}

func Hydrate(
	id uuid.UUID,
	name string,
	category Category,
	proficiency string,
	experienceTenths int,
	displayOrder int,
	createdAt time.Time,
	updatedAt time.Time,
) Skill {
	return Skill{
		id:               id,
		name:             name,
		category:         category,
		proficiency:      proficiency,
		experienceTenths: experienceTenths,
		displayOrder:     displayOrder,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s Skill) ID() uuid.UUID         { return s.id }
func (s Skill) Name() string          { return s.name }
func (s Skill) Category() Category    { return s.category }
func (s Skill) Proficiency() string   { return s.proficiency }
func (s Skill) ExperienceTenths() int { return s.experienceTenths }
func (s Skill) DisplayOrder() int     { return s.displayOrder }
func (s Skill) CreatedAt() time.Time  { return s.createdAt }
func (s Skill) UpdatedAt() time.Time  { return s.updatedAt }

// YearsOfExperience is the API-facing value in years with one decimal.
func (s Skill) YearsOfExperience() float64 { return float64(s.experienceTenths) / 10 }
