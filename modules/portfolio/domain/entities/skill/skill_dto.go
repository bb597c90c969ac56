package skill

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/katzedaze/portfolio/pkg/constants"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/serrors"
)

// UpsertDTO is the POST/PUT payload; both verbs share one shape.
type UpsertDTO struct {
	Name              string  `json:"name" validate:"required,max=100"`
	Category          string  `json:"category" validate:"required,oneof=frontend backend infrastructure others"`
	Proficiency       string  `json:"proficiency" validate:"required,max=50"`
	YearsOfExperience float64 `json:"yearsOfExperience" validate:"min=0,max=50"`
	DisplayOrder      int     `json:"displayOrder" validate:"min=0"`
}

var fieldNames = serrors.FieldNames{
	"Name":              "name",
	"Category":          "category",
	"Proficiency":       "proficiency",
	"YearsOfExperience": "yearsOfExperience",
	"DisplayOrder":      "displayOrder",
}

var fieldMessages = serrors.Messages{
	"Name.required":         "スキル名は必須です",
	"Name.max":              "スキル名は100文字以内で入力してください",
	"Category":              "カテゴリを選択してください",
	"Proficiency.required":  "習熟度は必須です",
	"Proficiency.max":       "習熟度は50文字以内で入力してください",
	"YearsOfExperience.min": "経験年数は0以上の値を入力してください",
	"YearsOfExperience.max": "経験年数は50年以下で入力してください",
	"DisplayOrder.min":      "表示順序は0以上の値を入力してください",
}

func (d *UpsertDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Proficiency = strings.TrimSpace(d.Proficiency)
}

func (d *UpsertDTO) Ok() ([]httpapi.Detail, bool) {
	d.Normalize()

	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ProcessValidatorErrors(err, fieldNames, fieldMessages), false
	}

	// Experience is keyed in 0.1-year steps.
	tenths := d.YearsOfExperience * 10
	if math.Abs(tenths-math.Round(tenths)) > 1e-9 {
		return []httpapi.Detail{{Field: "yearsOfExperience", Message: "経験年数は0.1刻みで入力してください"}}, false
	}

	return nil, true
}

// ToEntity converts the validated payload. Pass uuid.Nil when creating.
func (d *UpsertDTO) ToEntity(id uuid.UUID) Skill {
	s := New(d.Name, Category(d.Category), d.Proficiency, int(math.Round(d.YearsOfExperience*10)), d.DisplayOrder)
	s.id = id
	return s
}
