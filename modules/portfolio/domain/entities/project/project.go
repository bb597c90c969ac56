package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is one work-history entry, optionally tied to a company. A nil
// endDate means the project is ongoing.
type Project struct {
	id               uuid.UUID
	companyID        *uuid.UUID
	title            string
	startDate        time.Time
	endDate          *time.Time
	technologies     []string
	description      string
	responsibilities string
	achievements     string
	displayOrder     int
	createdAt        time.Time
	updatedAt        time.Time
}

func New(
	companyID *uuid.UUID,
	title string,
	startDate time.Time,
	endDate *time.Time,
	technologies []string,
	description, responsibilities, achievements string,
	displayOrder int,
) Project {
	return Project{
		companyID:        companyID,
		title:            strings.TrimSpace(title),
		startDate:        startDate,
		endDate:          endDate,
		technologies:     technologies,
		description:      description,
		responsibilities: responsibilities,
		achievements:     achievements,
		displayOrder:     displayOrder,
	}
}

func Hydrate(
	id uuid.UUID,
	companyID *uuid.UUID,
	title string,
	startDate time.Time,
	endDate *time.Time,
	technologies []string,
	description, responsibilities, achievements string,
	displayOrder int,
	createdAt, updatedAt time.Time,
) Project {
	return Project{
		id:               id,
		companyID:        companyID,
		title:            title,
		startDate:        startDate,
		endDate:          endDate,
		technologies:     technologies,
		description:      description,
		responsibilities: responsibilities,
		achievements:     achievements,
		displayOrder:     displayOrder,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p Project) ID() uuid.UUID            { return p.id }
func (p Project) CompanyID() *uuid.UUID    { return p.companyID }
func (p Project) Title() string            { return p.title }
func (p Project) StartDate() time.Time     { return p.startDate }
func (p Project) EndDate() *time.Time      { return p.endDate }
func (p Project) Technologies() []string   { return p.technologies }
func (p Project) Description() string      { return p.description }
func (p Project) Responsibilities() string { return p.responsibilities }
func (p Project) Achievements() string     { return p.achievements }
func (p Project) DisplayOrder() int        { return p.displayOrder }
func (p Project) CreatedAt() time.Time     { return p.createdAt }
func (p Project) UpdatedAt() time.Time     { return p.updatedAt }
