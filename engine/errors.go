package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for the matching engine's error taxonomy. Callers should
// use errors.Is against these rather than string-matching.
var (
	ErrInvalidOrder       = errors.New("invalid order")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrEmpty              = errors.New("empty")
	ErrInvariantViolation = errors.New("invariant violation")
)

// NotFoundError wraps ErrNotFound and carries the id that could not be
// located, so callers can report it without re-parsing an error string.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order %s: %v", e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func newNotFound(id uuid.UUID) error {
	return &NotFoundError{ID: id}
}

func newInvalidOrder(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidOrder)
}

func newInvariantViolation(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvariantViolation)
}
