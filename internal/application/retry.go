package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts = 5
	DefaultRetryDelay  = time.Second
)

var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryNotify observes a failed attempt before the executor waits next.
type RetryNotify func(attempt int, err error, next time.Duration)

// RetryExecutor runs a remote call with a fixed delay between attempts.
// It holds no per-call state and is safe for concurrent use.
type RetryExecutor struct {
	maxAttempts int
	delay       time.Duration
	notify      RetryNotify
}

func NewRetryExecutor(maxAttempts int, delay time.Duration, notify RetryNotify) *RetryExecutor {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if delay < 0 {
		delay = 0
	}

	return &RetryExecutor{
		maxAttempts: maxAttempts,
		delay:       delay,
		notify:      notify,
	}
}

func DefaultRetryExecutor(notify RetryNotify) *RetryExecutor {
	return NewRetryExecutor(DefaultMaxAttempts, DefaultRetryDelay, notify)
}

func (e *RetryExecutor) MaxAttempts() int {
	return e.maxAttempts
}

// Retryable reports whether a failed attempt may be tried again.
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, domain.ErrAuthExpired),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}

// Retry invokes op until it succeeds, returns a non-retryable error, the
// attempt budget is spent, or ctx is done. Non-retryable errors come back
// unwrapped; exhaustion wraps the last error with ErrRetriesExhausted.
func Retry[T any](ctx context.Context, e *RetryExecutor, op func(context.Context) (T, error)) (T, error) {
	if e == nil {
		e = DefaultRetryExecutor(nil)
	}

	attempt := 0
	operation := func() (T, error) {
		attempt++
		value, err := op(ctx)
		if err != nil && !Retryable(err) {
			return value, backoff.Permanent(err)
		}
		return value, err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(e.delay), uint64(e.maxAttempts-1)),
		ctx,
	)

	notify := func(err error, next time.Duration) {
		if e.notify != nil {
			e.notify(attempt, err, next)
		}
	}

	value, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err == nil {
		return value, nil
	}
	if !Retryable(err) || ctx.Err() != nil {
		return value, err
	}

	return value, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, err)
}
