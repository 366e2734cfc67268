// Package article provides use cases for reading articles and voting on them.
package article

import (
	"context"
	"errors"

	"nc-news/internal/common/pagination"
	"nc-news/internal/domain/entity"
	"nc-news/internal/observability/metrics"
	"nc-news/internal/repository"
	"nc-news/internal/usecase/failure"
)

// ListInput represents the listing parameters received from the client.
// SortBy and Order are passed through unvalidated; the repository's query
// builder owns the allow-lists.
type ListInput struct {
	Topic  *string
	SortBy string
	Order  string
	Page   pagination.Params
}

// Service provides article use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List returns articles with their comment counts.
// Returns entity.ErrInvalidSortColumn or entity.ErrInvalidSortOrder for
// sort inputs outside the allow-lists. An unmatched topic yields an empty slice.
func (s *Service) List(ctx context.Context, in ListInput) ([]repository.ArticleWithCount, error) {
	articles, err := s.Repo.List(ctx, repository.ArticleListQuery{
		Topic:  in.Topic,
		SortBy: in.SortBy,
		Order:  in.Order,
		Page:   repository.Page{Limit: in.Page.Limit, Offset: in.Page.Offset()},
	})
	switch {
	case errors.Is(err, entity.ErrInvalidSortColumn):
		metrics.RecordArticleListRejected("sort_by")
		return nil, err
	case errors.Is(err, entity.ErrInvalidSortOrder):
		metrics.RecordArticleListRejected("order")
		return nil, err
	case err != nil:
		return nil, failure.Normalize(err, "articles")
	}
	return articles, nil
}

// Get retrieves a single article with its comment count.
// Returns entity.ErrInvalidInput if the ID is not positive and
// entity.NotFound("article") if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleWithCount, error) {
	if err := entity.ValidateID("article_id", id); err != nil {
		return nil, err
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, failure.Normalize(err, "article")
	}
	return article, nil
}

// UpdateVotes adds patch.Delta to the article's votes and returns the updated article.
// Returns entity.NotFound("article") if the article does not exist.
func (s *Service) UpdateVotes(ctx context.Context, id int64, patch entity.VotePatch) (*entity.Article, error) {
	if err := entity.ValidateID("article_id", id); err != nil {
		return nil, err
	}

	article, err := s.Repo.AddVotes(ctx, id, patch.Delta)
	if err != nil {
		return nil, failure.Normalize(err, "article")
	}
	metrics.RecordVotes("article", patch.Delta)
	return article, nil
}
