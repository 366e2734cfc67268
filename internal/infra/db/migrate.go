package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed seeds/dev.sql
var seedDevSQL string

// schema creates the tables in dependency order. Constraint names are fixed
// because the repository layer maps foreign key violations by name.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS topics (
    slug        VARCHAR PRIMARY KEY,
    description VARCHAR NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS users (
    username   VARCHAR PRIMARY KEY,
    name       VARCHAR NOT NULL,
    avatar_url VARCHAR
)`,
	`CREATE TABLE IF NOT EXISTS articles (
    article_id      SERIAL PRIMARY KEY,
    title           VARCHAR NOT NULL,
    topic           VARCHAR NOT NULL CONSTRAINT articles_topic_fkey REFERENCES topics(slug),
    author          VARCHAR NOT NULL CONSTRAINT articles_author_fkey REFERENCES users(username),
    body            VARCHAR NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    votes           INT NOT NULL DEFAULT 0,
    article_img_url VARCHAR DEFAULT 'https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700'
)`,
	`CREATE TABLE IF NOT EXISTS comments (
    comment_id SERIAL PRIMARY KEY,
    body       VARCHAR NOT NULL,
    article_id INT NOT NULL CONSTRAINT comments_article_id_fkey REFERENCES articles(article_id) ON DELETE CASCADE,
    author     VARCHAR NOT NULL CONSTRAINT comments_author_fkey REFERENCES users(username),
    votes      INT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	// comment listing and comment_count aggregation
	`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
	// default article ordering
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_topic ON articles(topic)`,
}

// MigrateUp creates the schema. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}

// Seed loads the development dataset. Rows that already exist are left alone.
func Seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, seedDevSQL); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// MigrateDown drops every table. All data is lost.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS comments, articles, users, topics CASCADE`); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}
