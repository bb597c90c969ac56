package company

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/pkg/constants"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/serrors"
	"github.com/katzedaze/portfolio/pkg/types"
)

type UpsertDTO struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Industry     string  `json:"industry" validate:"max=100"`
	Description  string  `json:"description" validate:"max=5000"`
	JoinDate     *string `json:"joinDate"`
	LeaveDate    *string `json:"leaveDate"`
	DisplayOrder int     `json:"displayOrder" validate:"min=0"`

	joinDate  *time.Time
	leaveDate *time.Time
}

var fieldNames = serrors.FieldNames{
	"Name":         "name",
	"Industry":     "industry",
	"Description":  "description",
	"DisplayOrder": "displayOrder",
}

var fieldMessages = serrors.Messages{
	"Name.required":    "社名は必須です",
	"Name.max":         "社名は200文字以内で入力してください",
	"Industry.max":     "業界は100文字以内で入力してください",
	"Description.max":  "会社概要は5000文字以内で入力してください",
	"DisplayOrder.min": "表示順序は0以上の値を入力してください",
}

func (d *UpsertDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Industry = strings.TrimSpace(d.Industry)
}

func (d *UpsertDTO) Ok() ([]httpapi.Detail, bool) {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ProcessValidatorErrors(err, fieldNames, fieldMessages), false
	}

	var err error
	if d.joinDate, err = types.ParseDate(d.JoinDate); err != nil {
		return []httpapi.Detail{{Field: "joinDate", Message: "入社日の形式が不正です"}}, false
	}
	if d.leaveDate, err = types.ParseDate(d.LeaveDate); err != nil {
		return []httpapi.Detail{{Field: "leaveDate", Message: "退社日の形式が不正です"}}, false
	}
	if d.joinDate != nil && d.leaveDate != nil && d.leaveDate.Before(*d.joinDate) {
		return []httpapi.Detail{{Field: "leaveDate", Message: "退社日は入社日以降の日付を指定してください"}}, false
	}

	return nil, true
}

// ToEntity converts the validated payload. Ok must have been called first so
// the date fields are parsed.
func (d *UpsertDTO) ToEntity(id uuid.UUID) Company {
	c := New(d.Name, d.Industry, d.Description, d.joinDate, d.leaveDate, d.DisplayOrder)
	c.id = id
	return c
}
