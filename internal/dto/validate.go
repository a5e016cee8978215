package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks req against its validate tags. Field errors come back as an
// *apperr.ValidationError keyed by JSON field name.
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	verr := apperr.NewValidationError(make(map[string]string, len(fieldErrs)))
	for _, fe := range fieldErrs {
		verr.Fields[fe.Field()] = describe(fe)
	}
	return verr
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "alphanum":
		return "must contain only letters and digits"
	case "gtefield":
		return "must not be lower than " + fe.Param()
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
