package retry

import (
	"context"
	"time"
)

// ExponentialBackoff returns delay based on attempt number.
// The delay doubles with each attempt: base * 2^attempt
func ExponentialBackoff(attempt int, base time.Duration) time.Duration {
	return base * (1 << attempt)
}

// Do runs fn up to attempts times, sleeping with exponential backoff
// between tries. fn reports whether its error is worth retrying; a
// non-retryable error returns immediately. The last error is returned
// when every attempt fails. Context cancellation cuts the wait short.
func Do(ctx context.Context, attempts int, base time.Duration, fn func() (retryable bool, err error)) error {
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		var retryable bool
		retryable, err = fn()
		if err == nil || !retryable {
			return err
		}
		if attempt == attempts-1 {
			break
		}
		select {
		case <-time.After(ExponentialBackoff(attempt, base)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
