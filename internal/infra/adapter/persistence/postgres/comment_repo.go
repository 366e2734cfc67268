package postgres

import (
	"context"
	"database/sql"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

const commentColumns = `comment_id, article_id, author, body, created_at, votes`

type CommentRepo struct {
	db DBTX
}

func NewCommentRepo(db DBTX) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func scanComment(rows *sql.Rows, c *entity.Comment) error {
	return rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.CreatedAt, &c.Votes)
}

// ListByArticle returns comments on an article, newest first.
// An article without comments yields an empty slice.
func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64, page repository.Page) (comments []*entity.Comment, err error) {
	const op = "CommentRepo.ListByArticle"
	query := `
SELECT ` + commentColumns + `
FROM comments
WHERE article_id = $1
ORDER BY created_at DESC, comment_id DESC`
	args := []any{articleID}
	if page.Limit > 0 {
		query += "\nLIMIT $2 OFFSET $3"
		args = append(args, page.Limit, page.Offset)
	}

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer func() { _ = rows.Close() }()

	comments = make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var c entity.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, classify(op, err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return comments, nil
}

func (repo *CommentRepo) CountByArticle(ctx context.Context, articleID int64) (count int64, err error) {
	const op = "CommentRepo.CountByArticle"
	const query = `SELECT COUNT(*) FROM comments WHERE article_id = $1`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	err = queryOne(ctx, repo.db, op, query, func(rows *sql.Rows) error {
		return rows.Scan(&count)
	}, articleID)
	return count, err
}

// Create inserts a comment. Referential checks are left to the database:
// an unknown author or article surfaces as a FailureForeignKey naming the reference.
func (repo *CommentRepo) Create(ctx context.Context, articleID int64, author, body string) (comment *entity.Comment, err error) {
	const op = "CommentRepo.Create"
	const query = `
INSERT INTO comments (article_id, author, body)
VALUES ($1, $2, $3)
RETURNING ` + commentColumns

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	var c entity.Comment
	err = queryOne(ctx, repo.db, op, query, func(rows *sql.Rows) error {
		return scanComment(rows, &c)
	}, articleID, author, body)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) (err error) {
	const op = "CommentRepo.Delete"
	const query = `DELETE FROM comments WHERE comment_id = $1`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return classify(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		return repository.NotFound(op)
	}
	return nil
}

func (repo *CommentRepo) AddVotes(ctx context.Context, id int64, delta int64) (comment *entity.Comment, err error) {
	const op = "CommentRepo.AddVotes"
	const query = `
UPDATE comments
SET votes = votes + $1
WHERE comment_id = $2
RETURNING ` + commentColumns

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	var c entity.Comment
	err = queryOne(ctx, repo.db, op, query, func(rows *sql.Rows) error {
		return scanComment(rows, &c)
	}, delta, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
