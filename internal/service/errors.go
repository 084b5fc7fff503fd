package service

import (
	"errors"
	"fmt"

	"go-ricemill/pkg/validator"
)

// ErrValidation marks malformed or missing input. Handlers match it with
// errors.Is and translate to a 400.
var ErrValidation = errors.New("validation failed")

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
}
