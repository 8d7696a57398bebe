// Package retry re-runs provider calls after the provider rejects the current token.
package retry

import (
	"context"
	"fmt"

	"warehouse-gateway/internal/core/apperror"
)

// DefaultMaxAttempts bounds the attempts when a Coordinator has no explicit limit.
const DefaultMaxAttempts = 3

// Coordinator drives the attempt loop of one operation.
// Only token-rejected failures are retried; every other failure is terminal.
type Coordinator struct {
	// MaxAttempts is the total number of calls, including the first one.
	MaxAttempts int
	// Refresh acquires a new token, bypassing the cache.
	Refresh func(ctx context.Context) error
	// OnRetry is called before each refresh. Optional.
	OnRetry func(attempt int, err error)
}

type state int

const (
	stateSucceeded state = iota
	stateFailed
	stateRetrying
	stateExhausted
)

func (c Coordinator) limit() int {
	if c.MaxAttempts < 1 {
		return DefaultMaxAttempts
	}
	return c.MaxAttempts
}

// transition decides what follows attempt n given its outcome.
func (c Coordinator) transition(attempt int, err error) state {
	switch {
	case err == nil:
		return stateSucceeded
	case !apperror.IsTokenRejected(err):
		return stateFailed
	case attempt >= c.limit():
		return stateExhausted
	default:
		return stateRetrying
	}
}

// Do runs op until it succeeds, fails terminally, or the attempt budget is spent.
// A failed refresh ends the loop with the refresh error.
func Do[T any](ctx context.Context, c Coordinator, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(ctx)

		switch c.transition(attempt, err) {
		case stateSucceeded:
			return result, nil
		case stateFailed, stateExhausted:
			return zero, err
		case stateRetrying:
			if c.OnRetry != nil {
				c.OnRetry(attempt, err)
			}
			if c.Refresh == nil {
				return zero, err
			}
			if refreshErr := c.Refresh(ctx); refreshErr != nil {
				return zero, refreshErr
			}
		default:
			return zero, fmt.Errorf("retry: unknown state after attempt %d", attempt)
		}
	}
}
