// Package resolve turns search result and directory URLs into the
// underlying business website. It decodes search-engine redirect
// wrappers, digs websites out of directory detail pages, and follows
// generic link wrappers one hop.
package resolve

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/goquery"
)

var _ leadgen.Resolver = (*Resolver)(nil)

// Resolver resolves raw result URLs to business websites. A nil error
// with an empty string means the URL has no usable business website
// behind it.
type Resolver struct {
	fetcher leadgen.Fetcher
}

// NewResolver returns a Resolver using the given fetcher to follow
// redirects and load directory detail pages.
func NewResolver(fetcher leadgen.Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve implements leadgen.Resolver.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "http") {
		return "", nil
	}
	lower := strings.ToLower(rawURL)

	if strings.Contains(lower, "bing.com/ck/a") {
		return decodeBingRedirect(rawURL), nil
	}

	if strings.Contains(lower, "yellowpages.com") {
		return r.resolveDirectoryDetail(ctx, rawURL)
	}
	if strings.Contains(lower, "yelp.com") {
		return r.followRedirect(ctx, rawURL)
	}

	for _, indicator := range redirectorIndicators {
		if strings.Contains(lower, indicator) {
			return r.followRedirect(ctx, rawURL)
		}
	}

	// Direct URL: keep it unless it points at a directory.
	if matchesDomain(lower, directoryDomains) {
		return "", nil
	}
	return rawURL, nil
}

// resolveDirectoryDetail loads a directory detail page and extracts
// the business's own website from it.
func (r *Resolver) resolveDirectoryDetail(ctx context.Context, rawURL string) (string, error) {
	res, err := r.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if res.StatusCode != 200 {
		return "", nil
	}
	website := goquery.ExtractExternalWebsite(res.Body)
	if website == "" || !strings.HasPrefix(website, "http") {
		return "", nil
	}
	if matchesDomain(strings.ToLower(website), directoryDomains) {
		return "", nil
	}
	return website, nil
}

// followRedirect follows a link wrapper one hop and returns the final
// URL, unless it lands on a directory.
func (r *Resolver) followRedirect(ctx context.Context, rawURL string) (string, error) {
	res, err := r.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	final := res.FinalURL
	if final == "" || final == rawURL || !strings.HasPrefix(final, "http") {
		return "", nil
	}
	if matchesDomain(strings.ToLower(final), directoryDomains) {
		return "", nil
	}
	return final, nil
}

// decodeBingRedirect extracts the target URL from a Bing click
// wrapper. The u parameter is URL-encoded; values with an "a1" prefix
// carry a base64-encoded URL after the prefix, with padding stripped.
func decodeBingRedirect(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	encoded := u.Query().Get("u")
	if encoded == "" {
		return ""
	}

	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		decoded = encoded
	}

	if strings.HasPrefix(decoded, "a1") {
		b64 := decoded[2:]
		for len(b64)%4 != 0 {
			b64 += "="
		}
		if raw, err := base64.StdEncoding.DecodeString(b64); err == nil {
			decoded = string(raw)
		}
	}

	if !strings.HasPrefix(decoded, "http") {
		return ""
	}
	if matchesDomain(strings.ToLower(decoded), aggregatorDomains) {
		return ""
	}
	return decoded
}

// matchesDomain reports whether the URL's host matches any of the
// listed domains.
func matchesDomain(lowerURL string, domains []string) bool {
	host := lowerURL
	if u, err := url.Parse(lowerURL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	for _, domain := range domains {
		if strings.Contains(host, domain) {
			return true
		}
	}
	return false
}
