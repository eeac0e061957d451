// Package retry provides a small generic retry helper with exponential
// backoff and caller-supplied error classification.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy controls how many attempts are made and how long to wait
// between them. Backoff doubles after every retried attempt.
type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	OnRetry        func(attempt int, err error, backoff time.Duration)
}

// Retryable decides whether an error is worth another attempt.
type Retryable func(err error) bool

// Operation is the unit of work retried by Do.
type Operation[T any] func() (T, error)

// Do runs op until it succeeds, a non-retryable error occurs, the attempt
// budget is exhausted, or ctx is cancelled.
func Do[T any](ctx context.Context, p Policy, retryable Retryable, op Operation[T]) (T, error) {
	backoff := p.InitialBackoff

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		if !retryable(err) {
			var zero T
			return zero, err
		}

		if attempt == p.MaxAttempts {
			var zero T
			return zero, fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, backoff)
		}

		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			var zero T
			return zero, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	panic("unreachable: MaxAttempts must be >= 1")
}
