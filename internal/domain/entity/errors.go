package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the failure taxonomy shared by every layer.
// Handlers map them to HTTP status codes; usecases and the query builder return them.
var (
	// ErrInvalidInput indicates a malformed identifier or a non-integer vote delta.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingFields indicates that required create fields are absent or empty.
	ErrMissingFields = errors.New("comment must have an author and body")

	// ErrInvalidAuthor indicates that the referenced user does not exist.
	ErrInvalidAuthor = errors.New("invalid author: username does not exist")

	// ErrNotFound indicates that no row matched a read, update or delete target.
	// Use NotFound to attach the entity name.
	ErrNotFound = errors.New("not found")

	// ErrUnrecognizedKey indicates that a patch payload carries no valid mutation key
	// or carries keys other than the vote delta.
	ErrUnrecognizedKey = errors.New("invalid or missing key in patch body")

	// ErrInvalidSortColumn indicates a sort_by value outside the allow-list.
	ErrInvalidSortColumn = errors.New("invalid sort query")

	// ErrInvalidSortOrder indicates an order value other than asc or desc.
	ErrInvalidSortOrder = errors.New("invalid order query")

	// ErrAlreadyExists indicates that a create collided with an existing key.
	ErrAlreadyExists = errors.New("already exists")

	// ErrStorageUnavailable indicates the relational store could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// NotFoundError reports that the named entity does not exist.
// It matches ErrNotFound via errors.Is.
type NotFoundError struct {
	Entity string
}

// NotFound returns a NotFoundError for the given entity name
// (e.g. "article", "comment", "user", "article_comments").
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// Error returns a formatted error message for the missing entity.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is reports whether target is ErrNotFound, or a NotFoundError for the same entity.
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	var other *NotFoundError
	if errors.As(target, &other) {
		return other.Entity == e.Entity
	}
	return false
}

// ValidationError represents a validation error with detailed field information.
// It wraps one of the taxonomy sentinels so callers can still classify it.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the taxonomy sentinel (ErrInvalidInput when unset).
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidInput
	}
	return e.Err
}
