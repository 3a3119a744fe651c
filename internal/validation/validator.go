// Package validation wraps go-playground/validator with domain-friendly
// error reporting.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/umckinney/social-network-simulator/internal/errors"
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Validator validates structs using struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with JSON field names in error messages and a
// custom "handle" rule for word-safe identifiers (user IDs, picture IDs).
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		return handlePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct and returns a validation error with
// per-field details, or nil if the struct is valid.
func (v *Validator) ValidateStruct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.CodeValidation, "validation failed")
	}

	details := make(map[string]any, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = friendlyMessage(fieldErr)
	}

	return errors.ValidationWithDetails("invalid input", details)
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "handle":
		return "may only contain letters, digits, and underscores"
	default:
		return "failed validation rule: " + fe.Tag()
	}
}
