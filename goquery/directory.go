package goquery

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/leadgen"
)

var _ leadgen.SearchSource = (*DirectorySource)(nil)

// listingSelectors locate business listing containers on directory
// search pages, tried in order until one matches.
var listingSelectors = []string{
	".organic div.result",
	".result",
	".search-results .v-card",
	"[data-pid]",
}

// Per-field selector lists for a listing container.
var (
	listingNameSelectors    = []string{"a.business-name", ".business-name", ".n", "h3 a", ".listing-name"}
	listingPhoneSelectors   = []string{"div.phone", ".phone", ".phones", ".tel", `[class*="phone"]`}
	listingAddressSelectors = []string{".adr .street-address", ".adr .locality", ".adr", ".address", ".street-address", `[class*="address"]`}
	listingWebsiteSelectors = []string{"div.links>a", "a.business-name", ".track-visit-website", `a[href*="http"]`, ".website"}
)

// DirectorySource finds business leads by scraping a business
// directory's search results. It is the fallback source when the
// primary SERP search comes up empty.
type DirectorySource struct {
	fetcher  leadgen.Fetcher
	resolver leadgen.Resolver
	baseURL  string
}

// NewDirectorySource returns a DirectorySource scraping the given
// directory base URL, e.g. https://www.yellowpages.com.
func NewDirectorySource(fetcher leadgen.Fetcher, resolver leadgen.Resolver, baseURL string) *DirectorySource {
	return &DirectorySource{fetcher: fetcher, resolver: resolver, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DirectorySource) Name() string { return "directory" }

// Search implements leadgen.SearchSource. JSON-LD structured data is
// preferred; HTML listing parsing fills in the remainder up to the
// query limit.
func (s *DirectorySource) Search(ctx context.Context, query leadgen.SearchQuery) ([]*leadgen.Lead, error) {
	params := url.Values{}
	params.Set("search_terms", query.BusinessType)
	params.Set("geo_location_terms", query.Location)
	searchURL := s.baseURL + "/search?" + params.Encode()

	res, err := s.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != 200 {
		return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "directory search returned status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		return nil, leadgen.Errorf(leadgen.EINVALID, "failed to parse directory page: %v", err)
	}

	leads := s.leadsFromJSONLD(ctx, doc, query.Limit)
	if len(leads) < query.Limit {
		leads = append(leads, s.leadsFromListings(ctx, doc, query.Limit-len(leads))...)
	}
	if len(leads) > query.Limit {
		leads = leads[:query.Limit]
	}
	return leads, nil
}

// jsonLDBusiness is the subset of schema.org LocalBusiness we read.
type jsonLDBusiness struct {
	Type      string `json:"@type"`
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	URL       string `json:"url"`
	Address   struct {
		StreetAddress   string `json:"streetAddress"`
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
		PostalCode      string `json:"postalCode"`
	} `json:"address"`
}

func (s *DirectorySource) leadsFromJSONLD(ctx context.Context, doc *goquery.Document, limit int) []*leadgen.Lead {
	var leads []*leadgen.Lead

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return true
		}

		var items []jsonLDBusiness
		if strings.HasPrefix(raw, "[") {
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				return true
			}
		} else {
			var item jsonLDBusiness
			if err := json.Unmarshal([]byte(raw), &item); err != nil {
				return true
			}
			items = []jsonLDBusiness{item}
		}

		for _, item := range items {
			if item.Type != "LocalBusiness" || item.Name == "" {
				continue
			}
			lead := &leadgen.Lead{
				Name:    item.Name,
				Phone:   leadgen.FormatPhoneNumber(item.Telephone),
				Address: joinAddress(item.Address.StreetAddress, item.Address.AddressLocality, item.Address.AddressRegion, item.Address.PostalCode),
				Source:  "directory_jsonld",
			}
			if item.URL != "" {
				if resolved, err := s.resolver.Resolve(ctx, item.URL); err == nil && strings.HasPrefix(resolved, "http") {
					lead.Website = resolved
					lead.Domain = leadgen.ExtractDomain(resolved)
				}
			}
			leads = append(leads, lead)
			if len(leads) >= limit {
				return false
			}
		}
		return true
	})

	return leads
}

func (s *DirectorySource) leadsFromListings(ctx context.Context, doc *goquery.Document, limit int) []*leadgen.Lead {
	var listings *goquery.Selection
	for _, selector := range listingSelectors {
		if found := doc.Find(selector); found.Length() > 0 {
			listings = found
			break
		}
	}
	if listings == nil {
		return nil
	}

	var leads []*leadgen.Lead
	listings.EachWithBreak(func(_ int, listing *goquery.Selection) bool {
		if len(leads) >= limit {
			return false
		}
		lead := s.leadFromListing(ctx, listing)
		if lead != nil {
			leads = append(leads, lead)
		}
		return true
	})
	return leads
}

// leadFromListing builds a lead from one HTML listing container, or
// nil when no business name is present.
func (s *DirectorySource) leadFromListing(ctx context.Context, listing *goquery.Selection) *leadgen.Lead {
	lead := &leadgen.Lead{Source: "directory_html"}

	lead.Name = firstText(listing, listingNameSelectors)
	if lead.Name == "" {
		return nil
	}
	lead.Phone = leadgen.FormatPhoneNumber(firstText(listing, listingPhoneSelectors))
	lead.Address = firstText(listing, listingAddressSelectors)

	for _, selector := range listingWebsiteSelectors {
		elem := listing.Find(selector).First()
		if elem.Length() == 0 {
			continue
		}
		href, _ := elem.Attr("href")
		if !strings.HasPrefix(href, "http") {
			continue
		}
		if !strings.Contains(strings.ToLower(href), "yellowpages.com") {
			lead.Website = href
			lead.Domain = leadgen.ExtractDomain(href)
			break
		}
		// Detail page link: the resolver fetches it and digs out the
		// business's own website.
		if resolved, err := s.resolver.Resolve(ctx, href); err == nil && resolved != "" {
			lead.Website = resolved
			lead.Domain = leadgen.ExtractDomain(resolved)
			break
		}
	}

	return lead
}

func firstText(listing *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		elem := listing.Find(selector).First()
		if elem.Length() == 0 {
			continue
		}
		if text := strings.TrimSpace(elem.Text()); text != "" {
			return text
		}
	}
	return ""
}

func joinAddress(parts ...string) string {
	var nonEmpty []string
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
