// Package repository declares the persistence contracts the usecases depend on,
// together with the typed storage failure adapters report through.
package repository

import (
	"context"

	"nc-news/internal/domain/entity"
)

// ArticleWithCount represents an article along with the number of comments on it.
type ArticleWithCount struct {
	Article      *entity.Article
	CommentCount int64
}

// ArticleListQuery describes a listing request before validation.
// SortBy and Order are raw user input; adapters must check them against
// their allow-lists before they reach a query.
type ArticleListQuery struct {
	Topic  *string // Optional: case-insensitive substring match on topic
	SortBy string  // Column name, defaults to "created_at" when empty
	Order  string  // "asc" or "desc", defaults to "desc" when empty
	Page   Page
}

// Page bounds a listing. A zero Limit means unpaginated.
type Page struct {
	Limit  int
	Offset int
}

type ArticleRepository interface {
	// List returns articles with their comment counts, filtered and sorted per q.
	// Returns entity.ErrInvalidSortColumn or entity.ErrInvalidSortOrder without
	// touching storage when q carries values outside the allow-lists.
	List(ctx context.Context, q ArticleListQuery) ([]ArticleWithCount, error)
	// Get returns the article with its comment count.
	// Returns a Failure of kind FailureNotFound if no row matches.
	Get(ctx context.Context, id int64) (*ArticleWithCount, error)
	// Exists reports whether an article with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)
	// AddVotes applies votes = votes + delta in a single statement and returns the updated row.
	AddVotes(ctx context.Context, id int64, delta int64) (*entity.Article, error)
}
