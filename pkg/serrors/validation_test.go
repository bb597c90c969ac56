package serrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/pkg/constants"
	"github.com/katzedaze/portfolio/pkg/serrors"
)

type sample struct {
	Name     string `validate:"required"`
	Category string `validate:"oneof=a b"`
	Count    int    `validate:"min=0"`
}

var names = serrors.FieldNames{
	"Name":     "name",
	"Category": "category",
	"Count":    "count",
}

var messages = serrors.Messages{
	"Name.required": "名前は必須です",
	"Category":      "カテゴリを選択してください",
}

func TestProcessValidatorErrors_TagSpecificMessage(t *testing.T) {
	err := constants.Validate.Struct(&sample{Category: "a"})
	details := serrors.ProcessValidatorErrors(err, names, messages)
	require.Len(t, details, 1)
	assert.Equal(t, "name", details[0].Field)
	assert.Equal(t, "名前は必須です", details[0].Message)
}

func TestProcessValidatorErrors_FieldFallbackMessage(t *testing.T) {
	err := constants.Validate.Struct(&sample{Name: "x", Category: "z"})
	details := serrors.ProcessValidatorErrors(err, names, messages)
	require.Len(t, details, 1)
	assert.Equal(t, "category", details[0].Field)
	assert.Equal(t, "カテゴリを選択してください", details[0].Message)
}

func TestProcessValidatorErrors_GenericMessageAndName(t *testing.T) {
	err := constants.Validate.Struct(&sample{Name: "x", Category: "a", Count: -1})
	details := serrors.ProcessValidatorErrors(err, serrors.FieldNames{}, serrors.Messages{})
	require.Len(t, details, 1)
	assert.Equal(t, "Count", details[0].Field)
	assert.Equal(t, "Countの値が不正です", details[0].Message)
}

func TestProcessValidatorErrors_NonValidatorError(t *testing.T) {
	details := serrors.ProcessValidatorErrors(errors.New("boom"), names, messages)
	require.Len(t, details, 1)
	assert.Empty(t, details[0].Field)
	assert.Equal(t, "boom", details[0].Message)
}

func TestProcessValidatorErrors_NilError(t *testing.T) {
	assert.Nil(t, serrors.ProcessValidatorErrors(nil, names, messages))
}
