// Package apperrors defines the error taxonomy the lifecycle services
// surface to callers. Controllers translate these to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on duplicate codes and on redundant fare
	// status transitions.
	ErrConflict = errors.New("conflict")

	// ErrValidation is returned for malformed request fields the binding
	// layer cannot catch, such as unparseable dates.
	ErrValidation = errors.New("validation failed")
)

// NotFound wraps ErrNotFound with the entity kind and id.
func NotFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

// Conflict wraps ErrConflict with a human-readable reason.
func Conflict(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

// Validation wraps ErrValidation with the offending field and reason.
func Validation(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrValidation)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is or wraps ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsValidation reports whether err is or wraps ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
