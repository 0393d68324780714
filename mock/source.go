package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.SearchSource = (*SearchSource)(nil)

// SearchSource is a mock implementation of leadgen.SearchSource.
type SearchSource struct {
	SearchFn func(ctx context.Context, query leadgen.SearchQuery) ([]*leadgen.Lead, error)
	NameFn   func() string
}

func (s *SearchSource) Search(ctx context.Context, query leadgen.SearchQuery) ([]*leadgen.Lead, error) {
	return s.SearchFn(ctx, query)
}

func (s *SearchSource) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
