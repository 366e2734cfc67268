package repository

import (
	"context"

	"nc-news/internal/domain/entity"
)

type CommentRepository interface {
	// ListByArticle returns the comments on an article, newest first.
	ListByArticle(ctx context.Context, articleID int64, page Page) ([]*entity.Comment, error)
	// CountByArticle returns the number of comments on an article.
	CountByArticle(ctx context.Context, articleID int64) (int64, error)
	// Create inserts the comment and returns the stored row with generated fields.
	// Foreign key violations surface as a Failure of kind FailureForeignKey.
	Create(ctx context.Context, articleID int64, author, body string) (*entity.Comment, error)
	// Delete removes a comment. Returns a FailureNotFound Failure if no row matched.
	Delete(ctx context.Context, id int64) error
	// AddVotes applies votes = votes + delta in a single statement and returns the updated row.
	AddVotes(ctx context.Context, id int64, delta int64) (*entity.Comment, error)
}
