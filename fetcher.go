package leadgen

import "context"

// FetchResult holds the outcome of retrieving a URL.
type FetchResult struct {
	// StatusCode is the HTTP status of the final response.
	StatusCode int

	// Body is the response body. May be empty for non-200 responses.
	Body string

	// FinalURL is the URL after any redirects the transport followed.
	FinalURL string
}

// Fetcher retrieves pages from URLs. Implementations own transport
// concerns: timeouts, retries, header rotation, and per-domain rate
// limiting. A non-2xx status is reported in the result, not as an
// error; errors mean the fetch itself failed (network error, timeout).
type Fetcher interface {
	// Fetch retrieves the URL. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases transport resources. Must be called when the
	// Fetcher is no longer needed.
	Close() error
}

// Prober performs a cheap reachability check without downloading the
// body, used to validate speculative candidate websites.
type Prober interface {
	// Probe returns the HTTP status code for the URL.
	Probe(ctx context.Context, url string) (int, error)
}
