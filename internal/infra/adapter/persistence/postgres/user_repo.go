package postgres

import (
	"context"
	"database/sql"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
)

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) List(ctx context.Context) (users []*entity.User, err error) {
	const op = "UserRepo.List"
	const query = `SELECT username, name, avatar_url FROM users ORDER BY username`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify(op, err)
	}
	defer func() { _ = rows.Close() }()

	users = make([]*entity.User, 0, 8)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, classify(op, err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return users, nil
}

func (repo *UserRepo) Get(ctx context.Context, username string) (user *entity.User, err error) {
	const op = "UserRepo.Get"
	const query = `SELECT username, name, avatar_url FROM users WHERE username = $1`

	ctx, done := observe(ctx, op)
	defer func() { done(err) }()

	var u entity.User
	err = queryOne(ctx, repo.db, op, query, func(rows *sql.Rows) error {
		return rows.Scan(&u.Username, &u.Name, &u.AvatarURL)
	}, username)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
