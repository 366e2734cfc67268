// Package user provides read use cases for users.
package user

import (
	"context"
	"strings"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
	"nc-news/internal/usecase/failure"
)

type Service struct {
	Repo repository.UserRepository
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, failure.Normalize(err, "users")
	}
	return users, nil
}

// Get returns a user by username. Returns entity.NotFound("user") if absent.
func (s *Service) Get(ctx context.Context, username string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, &entity.ValidationError{Field: "username", Message: "is required", Err: entity.ErrInvalidInput}
	}

	u, err := s.Repo.Get(ctx, username)
	if err != nil {
		return nil, failure.Normalize(err, "user")
	}
	return u, nil
}
