package topic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/domain/entity"
	"nc-news/internal/repository"
	topicUC "nc-news/internal/usecase/topic"
)

type stubRepo struct {
	topics []*entity.Topic
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Topic, error) {
	return s.topics, nil
}

func (s *stubRepo) Create(_ context.Context, t *entity.Topic) (*entity.Topic, error) {
	for _, existing := range s.topics {
		if existing.Slug == t.Slug {
			return nil, &repository.Failure{Kind: repository.FailureUniqueViolation, Op: "stub.Create"}
		}
	}
	s.topics = append(s.topics, t)
	return t, nil
}

func TestService_List(t *testing.T) {
	svc := &topicUC.Service{Repo: &stubRepo{topics: []*entity.Topic{{Slug: "cats", Description: "Not dogs"}}}}

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "cats", got[0].Slug)
}

func TestService_Create(t *testing.T) {
	svc := &topicUC.Service{Repo: &stubRepo{topics: []*entity.Topic{{Slug: "cats", Description: "Not dogs"}}}}
	ctx := context.Background()

	got, err := svc.Create(ctx, topicUC.CreateInput{Slug: "dogs", Description: "Not cats"})
	require.NoError(t, err)
	assert.Equal(t, "dogs", got.Slug)

	_, err = svc.Create(ctx, topicUC.CreateInput{Slug: "cats", Description: "again"})
	assert.ErrorIs(t, err, entity.ErrAlreadyExists)

	_, err = svc.Create(ctx, topicUC.CreateInput{Slug: "birds"})
	assert.ErrorIs(t, err, entity.ErrMissingFields)
}
