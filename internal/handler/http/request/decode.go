// Package request decodes JSON request bodies into the shapes handlers accept.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"nc-news/internal/domain/entity"
)

// ErrBodyTooLarge is returned when the body exceeds the LimitRequestBody cap.
var ErrBodyTooLarge = errors.New("request body too large")

// DecodeJSON decodes the request body into v. Unknown fields are ignored.
// Malformed or empty bodies yield an error wrapping entity.ErrInvalidInput.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
		case errors.Is(err, io.EOF):
			return &entity.ValidationError{Field: "body", Message: "must not be empty", Err: entity.ErrInvalidInput}
		default:
			return fmt.Errorf("%w: malformed JSON body", entity.ErrInvalidInput)
		}
	}
	return nil
}

// DecodeVotePatch decodes a strict vote patch body: a JSON object whose only
// key is the vote delta.
func DecodeVotePatch(r *http.Request) (entity.VotePatch, error) {
	var fields map[string]json.RawMessage
	if err := DecodeJSON(r, &fields); err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			// an empty body carries no key
			return entity.VotePatch{}, entity.ErrUnrecognizedKey
		}
		return entity.VotePatch{}, err
	}
	return entity.ParseVotePatch(fields)
}

// CreateComment is the permissive body for posting a comment.
// Username is accepted as an alias for Author; other fields are ignored.
type CreateComment struct {
	Author   string `json:"author"`
	Username string `json:"username"`
	Body     string `json:"body"`
}

// AuthorName returns Author, falling back to Username.
func (c CreateComment) AuthorName() string {
	if c.Author != "" {
		return c.Author
	}
	return c.Username
}

// CreateTopic is the body for creating a topic.
type CreateTopic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
