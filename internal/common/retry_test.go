package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelabs/vlops/internal/service"
)

var errFlaky = errors.New("flaky")

func fastRetry(attempts int) service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
	}
}

func TestWithRetry_SucceedsAfterRetryableFailures(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errFlaky, Retryable: true}
		}
		return nil
	}, fastRetry(3))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return errFlaky
	}, fastRetry(5))

	require.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_Exhausted(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return &RetryableError{Err: errFlaky, Retryable: true}
	}, fastRetry(2))

	require.ErrorIs(t, err, ErrMaxRetries)
	require.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_SingleAttemptReturnsUnderlyingError(t *testing.T) {
	err := WithRetry(context.Background(), func() error {
		return &RetryableError{Err: errFlaky, Retryable: true}
	}, service.RetryOptions{})

	assert.Equal(t, errFlaky, err)
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error {
		return &RetryableError{Err: errFlaky, Retryable: true}
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff(t *testing.T) {
	b := NewBackoff(service.RetryOptions{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2})

	assert.Equal(t, 100*time.Millisecond, b.Next())
	assert.Equal(t, 200*time.Millisecond, b.Next())
	assert.Equal(t, 300*time.Millisecond, b.Next())
	assert.Equal(t, 300*time.Millisecond, b.Next())
}

func TestBackoff_Defaults(t *testing.T) {
	b := NewBackoff(service.RetryOptions{})

	assert.Equal(t, 100*time.Millisecond, b.Next())
	assert.Equal(t, 200*time.Millisecond, b.Next())
}

func TestBackoff_Throttle(t *testing.T) {
	b := NewBackoff(service.RetryOptions{InitialDelay: time.Millisecond, MaxDelay: time.Second})
	b.Throttle()

	assert.Equal(t, time.Second, b.Next())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&RetryableError{Err: errFlaky, Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errFlaky, Retryable: false}))
	assert.True(t, IsRetryable(ErrUnavailable))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(errFlaky))
}

func TestUserError(t *testing.T) {
	err := NewUserError("Resource not found.", ErrNotFound)
	assert.Equal(t, "Resource not found.: not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	bare := NewUserError("Try again", nil)
	assert.Equal(t, "Try again", bare.Error())
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		_, err := ParseLevel(level)
		assert.NoError(t, err, level)
	}
	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
