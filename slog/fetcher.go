// Package slog provides logging decorators for the pipeline's
// collaborator interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leadgen"
)

// Ensure LoggingFetcher implements leadgen.Fetcher.
var _ leadgen.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   leadgen.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next leadgen.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *leadgen.FetchResult, err error) {
	defer func(begin time.Time) {
		status, bytes := 0, 0
		if res != nil {
			status = res.StatusCode
			bytes = len(res.Body)
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
