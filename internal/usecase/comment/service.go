// Package comment provides use cases for listing, posting, voting on and
// deleting comments.
package comment

import (
	"context"

	"golang.org/x/sync/errgroup"

	"nc-news/internal/common/pagination"
	"nc-news/internal/domain/entity"
	"nc-news/internal/observability/metrics"
	"nc-news/internal/repository"
	"nc-news/internal/usecase/failure"
)

// CreateInput represents the input parameters for posting a comment.
type CreateInput struct {
	Author string
	Body   string
}

// ListResult is one page of an article's comments plus the article's total comment count.
type ListResult struct {
	Comments []*entity.Comment
	Total    int64
}

// Service provides comment use cases.
type Service struct {
	Repo     repository.CommentRepository
	Articles repository.ArticleRepository
}

// ListByArticle returns an article's comments, newest first.
//
// An absent article yields entity.NotFound("article"). An existing article
// with no comments at all yields entity.NotFound("article_comments"). A page
// past the end of a non-empty list yields an empty result.
func (s *Service) ListByArticle(ctx context.Context, articleID int64, page pagination.Params) (*ListResult, error) {
	if err := entity.ValidateID("article_id", articleID); err != nil {
		return nil, err
	}

	exists, err := s.Articles.Exists(ctx, articleID)
	if err != nil {
		return nil, failure.Normalize(err, "article")
	}
	if !exists {
		return nil, entity.NotFound("article")
	}

	result := &ListResult{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		comments, err := s.Repo.ListByArticle(gctx, articleID, repository.Page{Limit: page.Limit, Offset: page.Offset()})
		result.Comments = comments
		return err
	})
	g.Go(func() error {
		total, err := s.Repo.CountByArticle(gctx, articleID)
		result.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, failure.Normalize(err, "article_comments")
	}

	if result.Total == 0 {
		return nil, entity.NotFound("article_comments")
	}
	return result, nil
}

// Add posts a comment on an article.
// Returns entity.ErrMissingFields when author or body is blank,
// entity.ErrInvalidAuthor when the author is not a known user, and
// entity.NotFound("article") when the article does not exist.
func (s *Service) Add(ctx context.Context, articleID int64, in CreateInput) (*entity.Comment, error) {
	if err := entity.ValidateID("article_id", articleID); err != nil {
		return nil, err
	}
	if err := entity.ValidateNewComment(in.Author, in.Body); err != nil {
		return nil, err
	}

	comment, err := s.Repo.Create(ctx, articleID, in.Author, in.Body)
	if err != nil {
		return nil, failure.Normalize(err, "article")
	}
	metrics.RecordCommentCreated()
	return comment, nil
}

// Delete removes a comment. Returns entity.NotFound("comment") if no comment matched.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := entity.ValidateID("comment_id", id); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return failure.Normalize(err, "comment")
	}
	metrics.RecordCommentDeleted()
	return nil
}

// UpdateVotes adds patch.Delta to the comment's votes and returns the updated comment.
func (s *Service) UpdateVotes(ctx context.Context, id int64, patch entity.VotePatch) (*entity.Comment, error) {
	if err := entity.ValidateID("comment_id", id); err != nil {
		return nil, err
	}

	comment, err := s.Repo.AddVotes(ctx, id, patch.Delta)
	if err != nil {
		return nil, failure.Normalize(err, "comment")
	}
	metrics.RecordVotes("comment", patch.Delta)
	return comment, nil
}
