package http

import (
	"context"
	"time"

	"github.com/fwojciec/leadgen"
)

// Ensure RetryFetcher implements leadgen.Fetcher at compile time.
var _ leadgen.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// RetryFetcher decorates a Fetcher with backoff retries on transport
// failures. Responses with error status codes are not retried; the
// caller decides what to do with a 403 or 503 page.
type RetryFetcher struct {
	fetcher leadgen.Fetcher
	delays  []time.Duration
}

// NewRetryFetcher wraps fetcher with the given backoff delays. The
// number of delays determines the number of retries; nil delays means
// DefaultRetryDelays.
func NewRetryFetcher(fetcher leadgen.Fetcher, delays []time.Duration) *RetryFetcher {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return &RetryFetcher{fetcher: fetcher, delays: delays}
}

func (f *RetryFetcher) Fetch(ctx context.Context, url string) (*leadgen.FetchResult, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		res, err := f.fetcher.Fetch(ctx, url)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return nil, lastErr
}

func (f *RetryFetcher) Close() error {
	return f.fetcher.Close()
}
