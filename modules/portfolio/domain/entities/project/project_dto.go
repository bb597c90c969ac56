package project

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
	CompanyID        *string  `json:"companyId"`
	Title            string   `json:"title" validate:"required,max=200"`
	StartDate        string   `json:"startDate" validate:"required"`
	EndDate          *string  `json:"endDate"`
	Technologies     []string `json:"technologies" validate:"required,min=1,max=50"`
	Description      string   `json:"description" validate:"required,max=10000"`
	Responsibilities string   `json:"responsibilities" validate:"max=10000"`
	Achievements     string   `json:"achievements" validate:"max=10000"`
	DisplayOrder     int      `json:"displayOrder" validate:"min=0"`

	companyID *uuid.UUID
	startDate time.Time
	endDate   *time.Time
}

var fieldNames = serrors.FieldNames{
	"Title":            "title",
	"StartDate":        "startDate",
	"Technologies":     "technologies",
	"Description":      "description",
	"Responsibilities": "responsibilities",
	"Achievements":     "achievements",
	"DisplayOrder":     "displayOrder",
}

var fieldMessages = serrors.Messages{
	"Title.required":        "プロジェクト名は必須です",
	"Title.max":             "プロジェクト名は200文字以内で入力してください",
	"StartDate.required":    "開始日は必須です",
	"Technologies.required": "技術スタックは最低1つ必要です",
	"Technologies.min":      "技術スタックは最低1つ必要です",
	"Technologies.max":      "技術スタックは50個以内で入力してください",
	"Description.required":  "説明は必須です",
	"Description.max":       "説明は10000文字以内で入力してください",
	"Responsibilities.max":  "担当業務は10000文字以内で入力してください",
	"Achievements.max":      "成果実績は10000文字以内で入力してください",
	"DisplayOrder.min":      "表示順序は0以上の値を入力してください",
}

func (d *UpsertDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	techs := make([]string, 0, len(d.Technologies))
	for _, t := range d.Technologies {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	d.Technologies = techs
}

func (d *UpsertDTO) Ok() ([]httpapi.Detail, bool) {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ProcessValidatorErrors(err, fieldNames, fieldMessages), false
	}

	if d.CompanyID != nil && strings.TrimSpace(*d.CompanyID) != "" {
		parsed, err := uuid.Parse(*d.CompanyID)
		if err != nil {
			return []httpapi.Detail{{Field: "companyId", Message: "企業IDの形式が不正です"}}, false
		}
		d.companyID = &parsed
	} else {
		d.companyID = nil
	}

	start, err := types.ParseDate(&d.StartDate)
	if err != nil || start == nil {
		return []httpapi.Detail{{Field: "startDate", Message: "開始日の形式が不正です"}}, false
	}
	d.startDate = *start

	if d.endDate, err = types.ParseDate(d.EndDate); err != nil {
		return []httpapi.Detail{{Field: "endDate", Message: "終了日の形式が不正です"}}, false
	}
	if d.endDate != nil && d.endDate.Before(d.startDate) {
		return []httpapi.Detail{{Field: "endDate", Message: "終了日は開始日以降の日付を指定してください"}}, false
	}

	return nil, true
}

// ToEntity converts the validated payload. Ok must have been called first.
func (d *UpsertDTO) ToEntity(id uuid.UUID) Project {
	p := New(d.companyID, d.Title, d.startDate, d.endDate, d.Technologies,
		d.Description, d.Responsibilities, d.Achievements, d.DisplayOrder)
	p.id = id
	return p
}
