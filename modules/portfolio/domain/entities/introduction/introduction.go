package introduction

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Introduction is one self-PR section; content is markdown.
type Introduction struct {
	id           uuid.UUID
	title        string
	content      string
	displayOrder int
	createdAt    time.Time
	updatedAt    time.Time
}

func New(title, content string, displayOrder int) Introduction {
	return Introduction{
		title:        strings.TrimSpace(title),
		content:      content,
		displayOrder: displayOrder,
	}
}

func Hydrate(id uuid.UUID, title, content string, displayOrder int, createdAt, updatedAt time.Time) Introduction {
	return Introduction{
		id:           id,
		title:        title,
		content:      content,
		displayOrder: displayOrder,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (i Introduction) ID() uuid.UUID        { return i.id }
func (i Introduction) Title() string        { return i.title }
func (i Introduction) Content() string      { return i.content }
func (i Introduction) DisplayOrder() int    { return i.displayOrder }
func (i Introduction) CreatedAt() time.Time { return i.createdAt }
func (i Introduction) UpdatedAt() time.Time { return i.updatedAt }
