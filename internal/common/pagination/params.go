package pagination

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"nc-news/internal/domain/entity"
)

// Params is a validated page request. The zero value means unpaginated.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// Paginated reports whether the request asked for a page.
func (p Params) Paginated() bool {
	return p.Limit > 0
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	if !p.Paginated() {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ParseQueryParams reads the "limit" and "p" query parameters.
// When neither is present it returns the zero Params. When either is present
// the other takes its default. Out-of-range or non-integer values yield an
// error wrapping entity.ErrInvalidInput.
func ParseQueryParams(r *http.Request, cfg Config) (Params, error) {
	q := r.URL.Query()
	pageStr, limitStr := q.Get("p"), q.Get("limit")
	if pageStr == "" && limitStr == "" {
		return Params{}, nil
	}

	params := Params{Page: cfg.DefaultPage, Limit: cfg.DefaultLimit}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return Params{}, &entity.ValidationError{
				Field:   "p",
				Message: "must be a positive integer",
				Err:     entity.ErrInvalidInput,
			}
		}
		params.Page = page
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > cfg.MaxLimit {
			return Params{}, &entity.ValidationError{
				Field:   "limit",
				Message: fmt.Sprintf("must be between 1 and %d", cfg.MaxLimit),
				Err:     entity.ErrInvalidInput,
			}
		}
		params.Limit = limit
	}

	// Offset must stay representable.
	if params.Page-1 > math.MaxInt/params.Limit {
		return Params{}, &entity.ValidationError{
			Field:   "p",
			Message: "is too large",
			Err:     entity.ErrInvalidInput,
		}
	}

	return params, nil
}
