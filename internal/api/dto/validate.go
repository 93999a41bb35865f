package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

var validate = validator.New()

// Validate runs struct validation and converts failures into the validation
// error envelope.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	details := map[string]any{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		invalid = errs
		for _, fieldErr := range invalid {
			details[strings.ToLower(fieldErr.Field())] = fmt.Sprintf("failed %s validation", fieldErr.Tag())
		}
	}
	return apperrors.NewValidationError("invalid payload", details)
}
