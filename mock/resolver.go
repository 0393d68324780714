package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of leadgen.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, rawURL string) (string, error)
}

func (r *Resolver) Resolve(ctx context.Context, rawURL string) (string, error) {
	return r.ResolveFn(ctx, rawURL)
}
