// Package resilience provides fault tolerance patterns for the application.
//
// The package supports:
//   - Circuit breakers around the relational store (circuitbreaker)
//   - Retry logic with exponential backoff and jitter (retry), used when
//     waiting for the database to accept connections at startup
//
// Usage Example:
//
//	guarded := circuitbreaker.NewDBCircuitBreaker(db)
//	rows, err := guarded.QueryContext(ctx, query, args...)
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
