package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.LeadStore = (*LeadStore)(nil)

// LeadStore is a mock implementation of leadgen.LeadStore.
type LeadStore struct {
	LoadFn func(ctx context.Context, ownerKey string) ([]*leadgen.Lead, error)
	SaveFn func(ctx context.Context, ownerKey string, leads []*leadgen.Lead) error
}

func (s *LeadStore) Load(ctx context.Context, ownerKey string) ([]*leadgen.Lead, error) {
	return s.LoadFn(ctx, ownerKey)
}

func (s *LeadStore) Save(ctx context.Context, ownerKey string, leads []*leadgen.Lead) error {
	return s.SaveFn(ctx, ownerKey, leads)
}
