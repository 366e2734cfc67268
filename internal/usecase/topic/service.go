// Package topic provides use cases for topics.
package topic

import (
	"context"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
	"nc-news/internal/usecase/failure"
)

// CreateInput represents the input parameters for creating a topic.
type CreateInput struct {
	Slug        string
	Description string
}

type Service struct {
	Repo repository.TopicRepository
}

// List returns all topics.
func (s *Service) List(ctx context.Context) ([]*entity.Topic, error) {
	topics, err := s.Repo.List(ctx)
	if err != nil {
		return nil, failure.Normalize(err, "topics")
	}
	return topics, nil
}

// Create adds a topic. Returns entity.ErrMissingFields for a blank slug or
// description and entity.ErrAlreadyExists for a duplicate slug.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Topic, error) {
	if err := entity.ValidateNewTopic(in.Slug, in.Description); err != nil {
		return nil, err
	}

	topic, err := s.Repo.Create(ctx, &entity.Topic{Slug: in.Slug, Description: in.Description})
	if err != nil {
		return nil, failure.Normalize(err, "topic")
	}
	return topic, nil
}
