package repository

import (
	"context"

	"nc-news/internal/domain/entity"
)

type TopicRepository interface {
	List(ctx context.Context) ([]*entity.Topic, error)
	Create(ctx context.Context, topic *entity.Topic) (*entity.Topic, error)
}
