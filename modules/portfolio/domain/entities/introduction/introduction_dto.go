package introduction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/pkg/constants"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/serrors"
)

type UpsertDTO struct {
	Title        string `json:"title" validate:"required,max=200"`
	Content      string `json:"content" validate:"required,max=10000"`
	DisplayOrder int    `json:"displayOrder" validate:"min=0"`
}

var fieldNames = serrors.FieldNames{
	"Title":        "title",
	"Content":      "content",
	"DisplayOrder": "displayOrder",
}

var fieldMessages = serrors.Messages{
	"Title.required":   "タイトルは必須です",
	"Title.max":        "タイトルは200文字以内で入力してください",
	"Content.required": "内容は必須です",
	"Content.max":      "内容は10000文字以内で入力してください",
	"DisplayOrder.min": "表示順序は0以上の値を入力してください",
}

func (d *UpsertDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
}

func (d *UpsertDTO) Ok() ([]httpapi.Detail, bool) {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ProcessValidatorErrors(err, fieldNames, fieldMessages), false
	}
	return nil, true
}

func (d *UpsertDTO) ToEntity(id uuid.UUID) Introduction {
	e := New(d.Title, d.Content, d.DisplayOrder)
	e.id = id
	return e
}
