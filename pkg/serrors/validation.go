package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katzedaze/portfolio/pkg/httpapi"
)

// Messages maps "<StructField>.<tag>" to a user-facing message. A bare
// "<StructField>" key acts as a fallback for any failing tag on that field.
type Messages map[string]string

// FieldNames maps struct field names to their JSON names for the details
// payload.
type FieldNames map[string]string

// ProcessValidatorErrors converts validator errors into the API's detail
// list, preserving struct field order.
func ProcessValidatorErrors(err error, names FieldNames, msgs Messages) []httpapi.Detail {
	if err == nil {
		return nil
	}
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []httpapi.Detail{{Message: err.Error()}}
	}

	details := make([]httpapi.Detail, 0, len(validatorErrs))
	for _, fe := range validatorErrs {
		field := fe.StructField()
		msg, ok := msgs[field+"."+fe.Tag()]
		if !ok {
			msg, ok = msgs[field]
		}
		if !ok {
			msg = fmt.Sprintf("%sの値が不正です", field)
		}
		jsonName := names[field]
		if jsonName == "" {
			jsonName = field
		}
		details = append(details, httpapi.Detail{Field: jsonName, Message: msg})
	}
	return details
}
