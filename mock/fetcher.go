package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of leadgen.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*leadgen.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*leadgen.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ leadgen.Prober = (*Prober)(nil)

// Prober is a mock implementation of leadgen.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) (int, error)
}

func (p *Prober) Probe(ctx context.Context, url string) (int, error) {
	return p.ProbeFn(ctx, url)
}
