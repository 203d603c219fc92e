package application

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	for k := 0; k < DefaultMaxAttempts; k++ {
		t.Run(fmt.Sprintf("fails_%d_times", k), func(t *testing.T) {
			t.Parallel()

			var delays []time.Duration
			executor := NewRetryExecutor(DefaultMaxAttempts, time.Millisecond, func(_ int, _ error, next time.Duration) {
				delays = append(delays, next)
			})

			calls := 0
			value, err := Retry(context.Background(), executor, func(context.Context) (string, error) {
				calls++
				if calls <= k {
					return "", errors.New("connection reset")
				}
				return "ok", nil
			})

			require.NoError(t, err)
			assert.Equal(t, "ok", value)
			assert.Equal(t, k+1, calls)
			assert.Len(t, delays, k)
			for _, d := range delays {
				assert.Equal(t, time.Millisecond, d)
			}
		})
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	var notified atomic.Int32
	executor := NewRetryExecutor(DefaultMaxAttempts, time.Millisecond, func(int, error, time.Duration) {
		notified.Add(1)
	})

	calls := 0
	cause := &domain.ServiceError{Op: "share bandwidth", Status: 502}
	_, err := Retry(context.Background(), executor, func(context.Context) (domain.ShareResult, error) {
		calls++
		return domain.ShareResult{}, cause
	})

	require.Error(t, err)
	assert.Equal(t, executor.MaxAttempts(), calls)
	assert.EqualValues(t, DefaultMaxAttempts-1, notified.Load())
	assert.ErrorIs(t, err, ErrRetriesExhausted)

	var serviceErr *domain.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, 502, serviceErr.Status)
}

func TestRetryDoesNotRetryPermanentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "auth expired", err: fmt.Errorf("list missions: %w", domain.ErrAuthExpired)},
		{name: "already registered", err: domain.ErrAlreadyRegistered},
		{name: "canceled", err: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			_, err := Retry(context.Background(), NewRetryExecutor(5, time.Millisecond, nil), func(context.Context) (int, error) {
				calls++
				return 0, tt.err
			})

			assert.Equal(t, 1, calls)
			assert.ErrorIs(t, err, tt.err)
			assert.NotErrorIs(t, err, ErrRetriesExhausted)
		})
	}
}

func TestRetryStopsWhenContextIsCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Retry(ctx, NewRetryExecutor(5, time.Hour, nil), func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, errors.New("timeout")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRetryExecutorClampsAttempts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, NewRetryExecutor(0, time.Second, nil).MaxAttempts())
	assert.Equal(t, DefaultMaxAttempts, DefaultRetryExecutor(nil).MaxAttempts())
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	assert.False(t, Retryable(nil))
	assert.False(t, Retryable(domain.ErrAuthExpired))
	assert.True(t, Retryable(domain.ErrAuthFailed))
	assert.True(t, Retryable(&domain.ServiceError{Status: 500}))
	assert.True(t, Retryable(context.DeadlineExceeded))
}
