package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of leadgen.ContactExtractor.
type ContactExtractor struct {
	ExtractFn func(ctx context.Context, websiteURL string) (*leadgen.ContactInfo, error)
}

func (e *ContactExtractor) Extract(ctx context.Context, websiteURL string) (*leadgen.ContactInfo, error) {
	return e.ExtractFn(ctx, websiteURL)
}

var _ leadgen.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of leadgen.TextExtractor.
type TextExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *TextExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
