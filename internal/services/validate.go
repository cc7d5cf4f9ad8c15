package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the struct's validate tags and folds failures into a
// single Validation error naming every offending field.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.ErrValidation, err, err.Error())
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+" failed "+fe.Tag())
	}
	return apperr.Wrap(apperr.ErrValidation, err, "invalid input: "+strings.Join(parts, ", "))
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
