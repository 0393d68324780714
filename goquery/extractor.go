package goquery

import (
	"context"
	"slices"
	"strings"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.ContactExtractor = (*SiteExtractor)(nil)

// SiteExtractor extracts contact details from a business website by
// fetching a small budget of pages: the home page, then /contact,
// then /contact-us. It stops early once it finds an email or at least
// one social profile.
type SiteExtractor struct {
	fetcher leadgen.Fetcher
	text    leadgen.TextExtractor
}

// NewSiteExtractor returns a SiteExtractor using the given fetcher.
// The text extractor is optional; when set it provides an extra email
// layer over the page's readable text, which catches addresses that
// markup-level scanning misses in obfuscated layouts.
func NewSiteExtractor(fetcher leadgen.Fetcher, text leadgen.TextExtractor) *SiteExtractor {
	return &SiteExtractor{fetcher: fetcher, text: text}
}

// Extract implements leadgen.ContactExtractor. Fetch failures on
// individual pages are skipped; an error is returned only for an
// invalid website URL. When no email is found on any page but a
// contact form is present, a fallback address is synthesized against
// the site's domain and marked as generated.
func (e *SiteExtractor) Extract(ctx context.Context, websiteURL string) (*leadgen.ContactInfo, error) {
	if !strings.HasPrefix(websiteURL, "http") {
		return nil, leadgen.Errorf(leadgen.EINVALID, "invalid website URL: %q", websiteURL)
	}

	info := &leadgen.ContactInfo{Social: make(map[string]string)}

	base := strings.TrimRight(websiteURL, "/")
	pages := []string{websiteURL, base + "/contact", base + "/contact-us"}

	var fallback string
	for _, pageURL := range pages {
		if err := ctx.Err(); err != nil {
			return info, err
		}

		res, err := e.fetcher.Fetch(ctx, pageURL)
		if err != nil || res.StatusCode != 200 || res.Body == "" {
			continue
		}
		page, err := ParsePage(res.Body)
		if err != nil {
			continue
		}

		if info.Email == "" {
			if emails := page.Emails(); len(emails) > 0 {
				info.Email = emails[0]
				info.EmailOrigin = leadgen.EmailOriginScraped
			}
		}
		for platform, profileURL := range page.Social() {
			if info.Social[platform] == "" {
				info.Social[platform] = profileURL
			}
		}
		for _, phone := range page.Phones() {
			if !slices.Contains(info.Phones, phone) {
				info.Phones = append(info.Phones, phone)
			}
		}
		if info.Email == "" && e.text != nil {
			if text, err := e.text.Extract(res.Body); err == nil {
				if emails := EmailsInText(text); len(emails) > 0 {
					info.Email = emails[0]
					info.EmailOrigin = leadgen.EmailOriginScraped
				}
			}
		}
		if info.Email == "" && fallback == "" {
			fallback = page.FallbackEmail(websiteURL)
		}

		if info.Email != "" || len(info.Social) > 0 {
			break
		}
	}

	if info.Email == "" && fallback != "" {
		info.Email = fallback
		info.EmailOrigin = leadgen.EmailOriginGenerated
	}

	return info, nil
}
