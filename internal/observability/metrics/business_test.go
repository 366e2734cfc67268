package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordVotes(t *testing.T) {
	tests := []struct {
		name      string
		entity    string
		delta     int64
		direction string
	}{
		{name: "upvote article", entity: "article", delta: 100, direction: "up"},
		{name: "downvote article", entity: "article", delta: -100, direction: "down"},
		{name: "zero comment", entity: "comment", delta: 0, direction: "zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := VotesAppliedTotal.WithLabelValues(tt.entity, tt.direction)
			before := testutil.ToFloat64(counter)

			RecordVotes(tt.entity, tt.delta)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordCommentLifecycle(t *testing.T) {
	created := testutil.ToFloat64(CommentsCreatedTotal)
	deleted := testutil.ToFloat64(CommentsDeletedTotal)

	RecordCommentCreated()
	RecordCommentDeleted()
	RecordCommentDeleted()

	assert.Equal(t, created+1, testutil.ToFloat64(CommentsCreatedTotal))
	assert.Equal(t, deleted+2, testutil.ToFloat64(CommentsDeletedTotal))
}

func TestRecordArticleListRejected(t *testing.T) {
	counter := ArticleListRejectedTotal.WithLabelValues("sort_by")
	before := testutil.ToFloat64(counter)

	RecordArticleListRejected("sort_by")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordStorageFailure(t *testing.T) {
	counter := StorageFailuresTotal.WithLabelValues("CommentRepo.Create", "foreign_key")
	before := testutil.ToFloat64(counter)

	RecordStorageFailure("CommentRepo.Create", "foreign_key")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestUpdateDBConnections(t *testing.T) {
	UpdateDBConnections(7, 3)

	assert.Equal(t, float64(7), testutil.ToFloat64(DBConnectionsActive))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionsIdle))
}

func TestRecordHTTPRequest(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues("GET", "/api/articles/:id", "200")
	before := testutil.ToFloat64(counter)

	assert.NotPanics(t, func() {
		RecordHTTPRequest("GET", "/api/articles/:id", "200", 15*time.Millisecond, 0, 512)
	})

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordDBQuery(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordDBQuery("ArticleRepo.List", 3*time.Millisecond)
	})
}
