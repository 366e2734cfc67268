package postgres

import (
	"context"
	"database/sql"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

type TopicRepo struct {
	db DBTX
}

func NewTopicRepo(db DBTX) repository.TopicRepository {
	return &TopicRepo{db: db}
}

func (repo *TopicRepo) List(ctx context.Context) (topics []*entity.Topic, err error) {
	const op = "TopicRepo.List"
	const query = `SELECT slug, description FROM topics ORDER BY slug`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify(op, err)
	}
	defer func() { _ = rows.Close() }()

	topics = make([]*entity.Topic, 0, 8)
	for rows.Next() {
		var t entity.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, classify(op, err)
		}
		topics = append(topics, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return topics, nil
}

// Create inserts a topic. A duplicate slug surfaces as FailureUniqueViolation.
func (repo *TopicRepo) Create(ctx context.Context, topic *entity.Topic) (created *entity.Topic, err error) {
	const op = "TopicRepo.Create"
	const query = `
INSERT INTO topics (slug, description)
VALUES ($1, $2)
RETURNING slug, description`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	var t entity.Topic
	err = queryOne(ctx, repo.db, op, query, func(rows *sql.Rows) error {
		return rows.Scan(&t.Slug, &t.Description)
	}, topic.Slug, topic.Description)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
