package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailure_Error(t *testing.T) {
	tests := []struct {
		name     string
		failure  *Failure
		expected string
	}{
		{
			name:     "not found",
			failure:  &Failure{Kind: FailureNotFound, Op: "ArticleRepo.Get"},
			expected: "ArticleRepo.Get: not_found",
		},
		{
			name:     "foreign key with cause",
			failure:  &Failure{Kind: FailureForeignKey, Reference: "author", Op: "CommentRepo.Create", Err: errors.New("fk")},
			expected: "CommentRepo.Create: foreign_key (author): fk",
		},
		{
			name:     "other",
			failure:  &Failure{Op: "TopicRepo.List", Err: errors.New("boom")},
			expected: "TopicRepo.List: other: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.failure.Error())
		})
	}
}

func TestAsFailure(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NotFound("CommentRepo.Delete"))

	f, ok := AsFailure(wrapped)
	require.True(t, ok)
	assert.Equal(t, FailureNotFound, f.Kind)

	_, ok = AsFailure(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("op", nil))

	failure := NotFound("UserRepo.Get")
	assert.Same(t, failure, Wrap("op", failure))

	plain := errors.New("scan failed")
	wrapped := Wrap("UserRepo.List", plain)
	assert.ErrorIs(t, wrapped, plain)
	assert.Equal(t, "UserRepo.List: scan failed", wrapped.Error())
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "other", FailureOther.String())
	assert.Equal(t, "not_found", FailureNotFound.String())
	assert.Equal(t, "foreign_key", FailureForeignKey.String())
	assert.Equal(t, "unique_violation", FailureUniqueViolation.String())
	assert.Equal(t, "invalid_text", FailureInvalidText.String())
	assert.Equal(t, "unavailable", FailureUnavailable.String())
}
