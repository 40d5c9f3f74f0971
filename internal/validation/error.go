package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ErrValidation matches every *Error via errors.Is.
var ErrValidation = errors.New("validation failed")

// Error names the field that failed a schema constraint.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

func Invalid(field, reason string) error {
	return &Error{Field: field, Reason: reason}
}

// Required fails when value is blank after trimming.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Invalid(field, "is required")
	}
	return nil
}

// MaxLength counts runes, not bytes.
func MaxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return Invalid(field, fmt.Sprintf("is too long (max %d characters)", max))
	}
	return nil
}

func OneOf(field, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return Invalid(field, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
	}
	return nil
}

func Positive(field string, value int) error {
	if value <= 0 {
		return Invalid(field, "must be greater than 0")
	}
	return nil
}

func NonNegative(field string, value int) error {
	if value < 0 {
		return Invalid(field, "must not be negative")
	}
	return nil
}

// First returns the first non-nil error, so callers can list checks in
// field order.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
