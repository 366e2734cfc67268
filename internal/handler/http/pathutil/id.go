// Package pathutil parses path parameters and normalizes request paths for metric labels.
package pathutil

import (
	"strconv"

	"nc-news/internal/domain/entity"
)

// ParseID parses a positive integer identifier taken from a path segment.
// Anything else yields a ValidationError wrapping entity.ErrInvalidInput.
//
// Example:
//
//	id, err := ParseID(r.PathValue("article_id"))
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &entity.ValidationError{
			Field:   field,
			Message: "must be a positive integer",
			Err:     entity.ErrInvalidInput,
		}
	}
	return id, nil
}
