// Package service holds the lifecycle services, one per entity kind.
// Each follows the same orchestration: generate the next code, derive the
// initial status, persist, respond. The code step is shared below and
// parameterized by kind; the field mapping stays per kind since no two
// entities share a field set.
package service

import (
	"context"
	"time"

	"aqua_distribution/internal/apperrors"
	"aqua_distribution/internal/sequence"
)

const dateLayout = "2006-01-02"

// codedStore is the slice of a kind's store that code generation needs.
type codedStore[T any] interface {
	FindHighestByCode(ctx context.Context) (*T, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// nextEntityCode generates the next sequential code for a kind and verifies
// it is not already taken. The existence check is the race-safety net
// against concurrent creators; a collision is a Conflict, not a retry.
func nextEntityCode[T any](ctx context.Context, s codedStore[T], prefix string, codeOf func(*T) string) (string, error) {
	last, err := s.FindHighestByCode(ctx)
	if err != nil {
		return "", err
	}
	var lastCode string
	if last != nil {
		lastCode = codeOf(last)
	}
	code := sequence.NextCode(prefix, lastCode)

	exists, err := s.ExistsByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperrors.Conflict("code " + code + " already exists")
	}
	return code, nil
}

// parseDate parses an optional "YYYY-MM-DD" request field. Empty input
// yields the zero time.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.Validation(field + " must be YYYY-MM-DD")
	}
	return t, nil
}
