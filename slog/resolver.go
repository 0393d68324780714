package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leadgen"
)

// Ensure LoggingResolver implements leadgen.Resolver.
var _ leadgen.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging.
type LoggingResolver struct {
	next   leadgen.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next leadgen.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve logs the resolution result and delegates to the wrapped
// resolver.
func (r *LoggingResolver) Resolve(ctx context.Context, rawURL string) (resolved string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve",
			"url", rawURL,
			"resolved", resolved,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, rawURL)
}
