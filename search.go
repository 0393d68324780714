package leadgen

import "context"

// SearchQuery describes one business search.
type SearchQuery struct {
	// BusinessType is what to search for, e.g. "dentist".
	BusinessType string

	// Location scopes the search, e.g. "Austin".
	Location string

	// Limit caps the number of leads the source should return.
	Limit int
}

// SearchSource produces raw leads from one external search or directory
// collaborator. Sources return partial results freely; an error means
// the source is unusable for this query and the caller should move on
// to the next source.
type SearchSource interface {
	// Search runs the query and returns raw leads. Leads carry a
	// Source tag identifying the pipeline path that produced them.
	Search(ctx context.Context, query SearchQuery) ([]*Lead, error)

	// Name returns the source's identifier for logging.
	Name() string
}
