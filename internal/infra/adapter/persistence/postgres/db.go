// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"nc-news/internal/observability/metrics"
	"nc-news/internal/observability/tracing"
	"nc-news/internal/repository"
)

// DBTX is the subset of *sql.DB the repositories use.
// *circuitbreaker.DBCircuitBreaker satisfies it as well.
// Single-row reads go through QueryContext so a breaker can observe their errors.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// observe starts a span for a repository operation and returns a func that
// records its duration, classified failure kind and span status.
//
//	ctx, done := observe(ctx, "ArticleRepo.Get")
//	defer func() { done(err) }()
func observe(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.GetTracer().Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", op),
		),
	)

	return ctx, func(err error) {
		metrics.RecordDBQuery(op, time.Since(start))
		if err != nil {
			kind := repository.FailureOther
			if f, ok := repository.AsFailure(err); ok {
				kind = f.Kind
			}
			metrics.RecordStorageFailure(op, kind.String())
			span.SetAttributes(attribute.String("db.failure_kind", kind.String()))
			// A zero-row result is an expected outcome, not a span error.
			if kind != repository.FailureNotFound {
				span.RecordError(err)
				span.SetStatus(codes.Error, kind.String())
			}
		}
		span.End()
	}
}

// queryOne runs a query expected to return at most one row and scans it with scan.
// It returns repository.NotFound(op) when the result set is empty.
func queryOne(ctx context.Context, db DBTX, op, query string, scan func(*sql.Rows) error, args ...any) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return classify(op, err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return classify(op, err)
		}
		return repository.NotFound(op)
	}
	if err := scan(rows); err != nil {
		return classify(op, err)
	}
	return nil
}
