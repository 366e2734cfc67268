package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxSlugLength bounds topic slugs; the column is free text but slugs appear in URLs.
const maxSlugLength = 64

// ValidateNewComment checks the fields required to create a comment.
// Blank author or body yields a ValidationError wrapping ErrMissingFields.
func ValidateNewComment(author, body string) error {
	if strings.TrimSpace(author) == "" {
		return &ValidationError{Field: "author", Message: "is required", Err: ErrMissingFields}
	}
	if strings.TrimSpace(body) == "" {
		return &ValidationError{Field: "body", Message: "is required", Err: ErrMissingFields}
	}
	return nil
}

// ValidateNewTopic checks the fields required to create a topic.
func ValidateNewTopic(slug, description string) error {
	if strings.TrimSpace(slug) == "" {
		return &ValidationError{Field: "slug", Message: "is required", Err: ErrMissingFields}
	}
	if utf8.RuneCountInString(slug) > maxSlugLength {
		return &ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("must be at most %d characters", maxSlugLength),
		}
	}
	if strings.ContainsAny(slug, " /?#") {
		return &ValidationError{Field: "slug", Message: "must not contain spaces or URL delimiters"}
	}
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description", Message: "is required", Err: ErrMissingFields}
	}
	return nil
}

// ValidateID checks that a numeric identifier is positive.
func ValidateID(field string, id int64) error {
	if id <= 0 {
		return &ValidationError{Field: field, Message: "must be a positive integer", Err: ErrInvalidInput}
	}
	return nil
}
