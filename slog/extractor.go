package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leadgen"
)

// Ensure LoggingContactExtractor implements leadgen.ContactExtractor.
var _ leadgen.ContactExtractor = (*LoggingContactExtractor)(nil)

// LoggingContactExtractor wraps a ContactExtractor with debug logging.
type LoggingContactExtractor struct {
	next   leadgen.ContactExtractor
	logger *slog.Logger
}

// NewLoggingContactExtractor creates a new LoggingContactExtractor.
func NewLoggingContactExtractor(next leadgen.ContactExtractor, logger *slog.Logger) *LoggingContactExtractor {
	return &LoggingContactExtractor{next: next, logger: logger}
}

// Extract logs what was found and delegates to the wrapped extractor.
func (e *LoggingContactExtractor) Extract(ctx context.Context, websiteURL string) (info *leadgen.ContactInfo, err error) {
	defer func(begin time.Time) {
		email, socials := "", 0
		if info != nil {
			email = info.Email
			socials = len(info.Social)
		}
		e.logger.Info("extract contacts",
			"url", websiteURL,
			"email", email,
			"socials", socials,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, websiteURL)
}
