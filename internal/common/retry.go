package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/venturelabs/vlops/internal/service"
)

var (
	// ErrRateLimit indicates that the API rate limit has been exceeded.
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrMaxRetries indicates that all retry attempts have been exhausted.
	ErrMaxRetries = errors.New("max retries exceeded")
)

// RetryableError marks whether a failed call may be repeated.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// Backoff is the delay schedule between attempts of one call.
type Backoff struct {
	next       time.Duration
	max        time.Duration
	multiplier float64
}

// NewBackoff returns the schedule described by opts, with zero fields
// replaced by defaults.
func NewBackoff(opts service.RetryOptions) *Backoff {
	b := &Backoff{next: opts.InitialDelay, max: opts.MaxDelay, multiplier: opts.Multiplier}
	if b.next <= 0 {
		b.next = 100 * time.Millisecond
	}
	if b.max <= 0 {
		b.max = 5 * time.Second
	}
	if b.multiplier < 1 {
		b.multiplier = 2.0
	}
	b.next = min(b.next, b.max)
	return b
}

// Next returns the delay before the coming attempt and grows the one after.
func (b *Backoff) Next() time.Duration {
	d := b.next
	b.next = min(time.Duration(float64(b.next)*b.multiplier), b.max)
	return d
}

// Throttle jumps straight to the longest delay. Used after the server
// reported a rate limit.
func (b *Backoff) Throttle() {
	b.next = b.max
}

// WithRetry runs operation until it succeeds, fails permanently, or
// opts.MaxAttempts is reached. Only errors wrapped in a RetryableError with
// Retryable set are repeated. A single-attempt policy returns the
// underlying error unchanged.
func WithRetry(ctx context.Context, operation func() error, opts service.RetryOptions) error {
	attempts := max(opts.MaxAttempts, 1)
	backoff := NewBackoff(opts)

	for attempt := 1; ; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		var retryableErr *RetryableError
		if !errors.As(err, &retryableErr) || !retryableErr.Retryable {
			return err
		}
		if attempt == attempts {
			if attempts == 1 {
				return retryableErr.Err
			}
			return fmt.Errorf("%w after %d attempts: %w", ErrMaxRetries, attempts, retryableErr.Err)
		}

		if errors.Is(err, ErrRateLimit) {
			backoff.Throttle()
		}
		delay := backoff.Next()

		slog.Warn("Request failed, retrying",
			"attempt", attempt,
			"max_attempts", attempts,
			"delay", delay,
			"error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
