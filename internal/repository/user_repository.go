package repository

import (
	"context"

	"nc-news/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	// Get looks a user up by exact username.
	// Returns a FailureNotFound Failure if absent.
	Get(ctx context.Context, username string) (*entity.User, error)
}
