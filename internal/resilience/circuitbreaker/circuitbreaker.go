// Package circuitbreaker guards calls to the relational store with
// github.com/sony/gobreaker so a failing database is not hammered by every
// request while it recovers.
package circuitbreaker

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"nc-news/internal/observability/metrics"
)

// Config describes one breaker.
type Config struct {
	Name string

	// HalfOpenProbes is how many calls may pass while half-open.
	HalfOpenProbes uint32

	// ResetInterval clears the closed-state counts; zero never clears them.
	ResetInterval time.Duration

	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration

	// Trip decides, from the closed-state counts, when to open.
	Trip func(gobreaker.Counts) bool

	// IsSuccessful reports whether an error still counts as a healthy call.
	// Nil means only a nil error does.
	IsSuccessful func(error) bool
}

// ConsecutiveFailures trips after n failures in a row.
func ConsecutiveFailures(n uint32) func(gobreaker.Counts) bool {
	return func(c gobreaker.Counts) bool {
		return c.ConsecutiveFailures >= n
	}
}

// FailureRatio trips once at least min calls were made and the failure
// share reaches ratio.
func FailureRatio(min uint32, ratio float64) func(gobreaker.Counts) bool {
	return func(c gobreaker.Counts) bool {
		if c.Requests < min {
			return false
		}
		return float64(c.TotalFailures)/float64(c.Requests) >= ratio
	}
}

// Breaker is a named gobreaker.CircuitBreaker that reports state changes to
// the log and the circuit_breaker_state gauge.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// New creates a closed breaker.
func New(cfg Config) *Breaker {
	trip := cfg.Trip
	if trip == nil {
		trip = ConsecutiveFailures(5)
	}
	b := &Breaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  cfg.HalfOpenProbes,
		Interval:     cfg.ResetInterval,
		Timeout:      cfg.OpenTimeout,
		ReadyToTrip:  trip,
		IsSuccessful: cfg.IsSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.RecordCircuitBreakerState(name, int(to))
		},
	})}
	metrics.RecordCircuitBreakerState(cfg.Name, int(gobreaker.StateClosed))
	return b
}

// Do runs fn through b. While open it returns gobreaker.ErrOpenState without
// calling fn.
func Do[T any](b *Breaker, fn func() (T, error)) (T, error) {
	out, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	v, _ := out.(T)
	return v, err
}

func (b *Breaker) Name() string { return b.cb.Name() }

func (b *Breaker) State() gobreaker.State { return b.cb.State() }

// Counts returns the counts of the current generation.
func (b *Breaker) Counts() gobreaker.Counts { return b.cb.Counts() }

// IsRejected reports whether err means the breaker refused the call
// (open state, or half-open with its probe budget exhausted).
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
