package fetch

import (
	"context"
	"time"

	"github.com/fwojciec/docstash"
)

// DefaultRetryDelays returns the backoff delays for remote retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Do invokes fn, retrying with the given backoff delays while it fails with
// EUNAVAILABLE. Any other error code fails immediately: missing remote paths
// and rate limiting never improve with a retry, and throttling a throttled
// host makes things worse.
func Do(ctx context.Context, delays []time.Duration, fn func(ctx context.Context) error) error {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if docstash.ErrorCode(err) != docstash.EUNAVAILABLE {
			return err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
