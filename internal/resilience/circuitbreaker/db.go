package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
)

// DBCircuitBreaker puts a Breaker in front of a *sql.DB. It exposes the
// query methods the postgres repositories use.
type DBCircuitBreaker struct {
	breaker *Breaker
	db      *sql.DB
}

// DBConfig opens after five consecutive infrastructure failures, or once half
// of at least 20 calls in a reset interval failed, and probes again after 30 seconds.
func DBConfig() Config {
	consecutive, ratio := ConsecutiveFailures(5), FailureRatio(20, 0.5)
	return Config{
		Name:           "database",
		HalfOpenProbes: 3,
		ResetInterval:  time.Minute,
		OpenTimeout:    30 * time.Second,
		Trip: func(c gobreaker.Counts) bool {
			return consecutive(c) || ratio(c)
		},
		IsSuccessful: isDBSuccess,
	}
}

// isDBSuccess treats errors the server answered with (constraint violations,
// bad input text) and caller cancellations as healthy round trips.
// Only connection-level and resource failures count against the breaker.
func isDBSuccess(err error) bool {
	if err == nil || errors.Is(err, sql.ErrNoRows) || errors.Is(err, context.Canceled) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "08", "53", "57", "58":
			return false
		}
		return true
	}
	return false
}

// NewDBCircuitBreaker guards db with DBConfig.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{breaker: New(cfg), db: db}
}

func (d *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return Do(d.breaker, func() (*sql.Rows, error) {
		return d.db.QueryContext(ctx, query, args...)
	})
}

func (d *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return Do(d.breaker, func() (sql.Result, error) {
		return d.db.ExecContext(ctx, query, args...)
	})
}

func (d *DBCircuitBreaker) PingContext(ctx context.Context) error {
	_, err := Do(d.breaker, func() (struct{}, error) {
		return struct{}{}, d.db.PingContext(ctx)
	})
	return err
}

func (d *DBCircuitBreaker) Name() string { return d.breaker.Name() }

func (d *DBCircuitBreaker) State() gobreaker.State { return d.breaker.State() }

func (d *DBCircuitBreaker) Counts() gobreaker.Counts { return d.breaker.Counts() }

func (d *DBCircuitBreaker) IsOpen() bool { return d.breaker.State() == gobreaker.StateOpen }
