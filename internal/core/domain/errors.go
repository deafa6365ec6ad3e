package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrCategoryNotFound  = errors.New("category does not exist")
	ErrCategoryInUse     = errors.New("category is referenced by items")
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrNotFound          = errors.New("entity not found")
	ErrPersistence       = errors.New("persistence failure")
	ErrUnknownField      = errors.New("field is not patchable")
)

// Validation failure reasons.
const (
	ReasonEmpty        = "cannot be empty"
	ReasonNotPositive  = "must be greater than zero"
	ReasonNegative     = "cannot be negative"
	ReasonInvalidValue = "is not a valid value"
	ReasonTooLong      = "is too long"
)

// ValidationError reports a supplied field that violates its type rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
