package leadgen

import "context"

// Resolver canonicalizes raw result URLs into direct business websites.
// It decodes search-engine redirect URLs, digs the real website out of
// directory listing pages, follows generic redirectors one hop, and
// filters out directory/social domains.
//
// Resolve returns "" (with a nil error) when no canonical business URL
// can be produced: failure to resolve means "no website", not an error.
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) (string, error)
}
