package repository

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// enumValue is implemented by the model enum types.
type enumValue interface {
	Valid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumValue)
		return ok && e.Valid()
	})
	return v
}

// Check validates a single request parameter against a validator tag
// (e.g. "required", "gt=0", "enum") and wraps failures in ErrInvalidArgument.
func Check(field string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, field, err)
	}
	return nil
}

// CheckStruct validates a request struct such as DateRange.
func CheckStruct(name string, s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, name, err)
	}
	return nil
}
