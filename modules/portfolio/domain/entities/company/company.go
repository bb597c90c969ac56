package company

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Company is one employer in the work history. A nil leaveDate means the
// position is still held.
type Company struct {
	id           uuid.UUID
	name         string
	industry     string
	description  string
	joinDate     *time.Time
	leaveDate    *time.Time
	displayOrder int
	createdAt    time.Time
	updatedAt    time.Time
}

func New(name, industry, description string, joinDate, leaveDate *time.Time, displayOrder int) Company {
	return Company{
		name:         strings.TrimSpace(name),
		industry:     strings.TrimSpace(industry),
		description:  description,
		joinDate:     joinDate,
		leaveDate:    leaveDate,
		displayOrder: displayOrder,
	}
}

func Hydrate(
	id uuid.UUID,
	name, industry, description string,
	joinDate, leaveDate *time.Time,
	displayOrder int,
	createdAt, updatedAt time.Time,
) Company {
	return Company{
		id:           id,
		name:         name,
		industry:     industry,
		description:  description,
		joinDate:     joinDate,
		leaveDate:    leaveDate,
		displayOrder: displayOrder,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c Company) ID() uuid.UUID         { return c.id }
func (c Company) Name() string          { return c.name }
func (c Company) Industry() string      { return c.industry }
func (c Company) Description() string   { return c.description }
func (c Company) JoinDate() *time.Time  { return c.joinDate }
func (c Company) LeaveDate() *time.Time { return c.leaveDate }
func (c Company) DisplayOrder() int     { return c.displayOrder }
func (c Company) CreatedAt() time.Time  { return c.createdAt }
func (c Company) UpdatedAt() time.Time  { return c.updatedAt }
