package postgres

import (
	"context"
	"database/sql"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

type ArticleRepo struct {
	db           DBTX
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticleWithCount(rows *sql.Rows) (repository.ArticleWithCount, error) {
	var a entity.Article
	var count int64
	err := rows.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &count)
	return repository.ArticleWithCount{Article: &a, CommentCount: count}, err
}

// List returns articles with comment counts. Sort inputs are validated by the
// query builder, so an invalid column or order never reaches the database.
func (repo *ArticleRepo) List(ctx context.Context, q repository.ArticleListQuery) (result []repository.ArticleWithCount, err error) {
	const op = "ArticleRepo.List"

	query, args, err := repo.queryBuilder.BuildListQuery(q)
	if err != nil {
		return nil, err
	}

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer func() { _ = rows.Close() }()

	capacity := q.Page.Limit
	if capacity == 0 {
		capacity = 16
	}
	result = make([]repository.ArticleWithCount, 0, capacity)
	for rows.Next() {
		item, err := scanArticleWithCount(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return result, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (result *repository.ArticleWithCount, err error) {
	const op = "ArticleRepo.Get"
	const query = `
SELECT articles.article_id, articles.title, articles.topic, articles.author, articles.body,
       articles.created_at, articles.votes, articles.article_img_url,
       CAST(COUNT(comments.comment_id) AS INT) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id
WHERE articles.article_id = $1
GROUP BY articles.article_id`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	err = queryOne(ctx, repo.db, op, query, func(rows *sql.Rows) error {
		item, err := scanArticleWithCount(rows)
		result = &item
		return err
	}, id)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (exists bool, err error) {
	const op = "ArticleRepo.Exists"
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	err = queryOne(ctx, repo.db, op, query, func(rows *sql.Rows) error {
		return rows.Scan(&exists)
	}, id)
	return exists, err
}

// AddVotes increments votes by delta in a single statement, so concurrent
// patches never lose an update.
func (repo *ArticleRepo) AddVotes(ctx context.Context, id int64, delta int64) (article *entity.Article, err error) {
	const op = "ArticleRepo.AddVotes"
	const query = `
UPDATE articles
SET votes = votes + $1
WHERE article_id = $2
RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	var a entity.Article
	err = queryOne(ctx, repo.db, op, query, func(rows *sql.Rows) error {
		return rows.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL)
	}, delta, id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
