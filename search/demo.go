package search

import (
	"context"
	"strings"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/classify"
)

// Ensure DemoSource implements the SearchSource interface.
var _ leadgen.SearchSource = (*DemoSource)(nil)

// DemoSource synthesizes leads from a canned catalog. It backs the
// pipeline when every live source fails, so a legitimate query never
// returns an unexplained empty result. Demo leads are always tagged
// Source="demo_data" and are never mixed with live results.
type DemoSource struct {
	Catalog classify.DemoCatalog
}

// Search returns canned leads for the query's business type, with
// addresses templated on the query location.
func (s *DemoSource) Search(ctx context.Context, query leadgen.SearchQuery) ([]*leadgen.Lead, error) {
	businesses := s.Catalog.DemoBusinesses(query.BusinessType)
	if query.Limit > 0 && len(businesses) > query.Limit {
		businesses = businesses[:query.Limit]
	}

	leads := make([]*leadgen.Lead, 0, len(businesses))
	for _, b := range businesses {
		lead := &leadgen.Lead{
			Name:        b.Name,
			Phone:       b.Phone,
			Website:     b.Website,
			Domain:      leadgen.ExtractDomain(b.Website),
			Email:       demoEmail(b.Name),
			EmailOrigin: leadgen.EmailOriginGenerated,
			Address:     b.Street + ", " + query.Location,
			Source:      "demo_data",
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// Name returns the source identifier.
func (s *DemoSource) Name() string { return "demo_data" }

func demoEmail(name string) string {
	local := strings.ReplaceAll(strings.ToLower(name), " ", "")
	return "info@" + local + ".com"
}
