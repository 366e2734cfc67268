package metrics

// RecordVotes records a vote delta applied to an article or comment.
func RecordVotes(entity string, delta int64) {
	direction := "zero"
	switch {
	case delta > 0:
		direction = "up"
	case delta < 0:
		direction = "down"
	}
	VotesAppliedTotal.WithLabelValues(entity, direction).Inc()
}

// RecordCommentCreated records a successfully posted comment.
func RecordCommentCreated() {
	CommentsCreatedTotal.Inc()
}

// RecordCommentDeleted records a successfully deleted comment.
func RecordCommentDeleted() {
	CommentsDeletedTotal.Inc()
}

// RecordArticleListRejected records a listing rejected during validation.
// Reason should be one of "sort_by", "order" or "pagination".
func RecordArticleListRejected(reason string) {
	ArticleListRejectedTotal.WithLabelValues(reason).Inc()
}

// RecordStorageFailure records a classified storage failure.
func RecordStorageFailure(operation, kind string) {
	StorageFailuresTotal.WithLabelValues(operation, kind).Inc()
}

// UpdateDBConnections updates the connection pool gauges.
func UpdateDBConnections(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
