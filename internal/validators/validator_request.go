package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request DTOs by their `validate` struct tags.
// Field names in error messages are taken from the `json` tags so that they
// match what the client sent.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator]. The returned value is
// safe for concurrent use.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate implements [Validator].
//
// A failed rule is reported as [ErrInvalidRequest] wrapped with a message
// naming the first offending field, e.g. "invalid request: email must be a
// valid email address". Non-struct input yields [ErrUnsupportedType].
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalidValidationError *validator.InvalidValidationError
	if errors.As(err, &invalidValidationError) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldError := validationErrors[0]
		return fmt.Errorf("%w: %s %s", ErrInvalidRequest, fieldError.Field(), validationMessage(fieldError.Tag(), fieldError.Param()))
	}

	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

func jsonFieldName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	default:
		return name
	}
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	default:
		if param != "" {
			return fmt.Sprintf("failed %s validation (%s)", rule, param)
		}
		return "failed " + rule + " validation"
	}
}
