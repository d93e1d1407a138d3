package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance = validator.New(validator.WithRequiredStructEnabled())
)

// Validate checks struct tags on v. Failures wrap ErrInvalidArgument.
func Validate(v any) error {
	if err := validatorInstance.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}
	return nil
}
