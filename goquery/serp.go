package goquery

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/leadgen"
)

var _ leadgen.SearchSource = (*SERPSource)(nil)

// serpSkipDomains are hosts whose results are directories or social
// profiles rather than business websites.
var serpSkipDomains = []string{
	"yellowpages.com", "yelp.com", "facebook.com", "linkedin.com",
	"instagram.com", "twitter.com", "google.com", "mapquest.com",
}

var (
	ratingRe      = regexp.MustCompile(`[0-9]\.[0-9]|[0-9]`)
	ratingTextRe  = regexp.MustCompile(`(?i)([0-9]\.[0-9]|[0-9])\s*(?:stars?|/5|★)`)
	hoursRangeRe  = regexp.MustCompile(`(?i)[0-9]{1,2}(?::[0-9]{2})?\s*(?:AM|PM)\s*-\s*[0-9]{1,2}(?::[0-9]{2})?\s*(?:AM|PM)`)
	hoursStatusRe = regexp.MustCompile(`(?i)open now|closed now|opens at|closes at`)
)

// ratingSelectors are tried in order against each result element.
var ratingSelectors = []string{".b_starRating", ".b_ratNum", "[data-rating]", ".rating"}

// SERPSource finds business leads by scraping Bing web search results.
// It is the primary search source.
type SERPSource struct {
	fetcher  leadgen.Fetcher
	resolver leadgen.Resolver
}

// NewSERPSource returns a SERPSource using the given fetcher and
// redirect resolver.
func NewSERPSource(fetcher leadgen.Fetcher, resolver leadgen.Resolver) *SERPSource {
	return &SERPSource{fetcher: fetcher, resolver: resolver}
}

func (s *SERPSource) Name() string { return "bing_enhanced" }

// Search implements leadgen.SearchSource. It runs several query
// variants and parses the organic results, resolving each result URL
// to the underlying business website. Results are deduplicated by
// website and ordered by relevance to the requested business type.
func (s *SERPSource) Search(ctx context.Context, query leadgen.SearchQuery) ([]*leadgen.Lead, error) {
	variants := []string{
		fmt.Sprintf(`"best %s" %s phone hours reviews website`, query.BusinessType, query.Location),
		fmt.Sprintf(`%s near %s contact information address`, query.BusinessType, query.Location),
		fmt.Sprintf(`top rated %s %s phone email social media`, query.BusinessType, query.Location),
		fmt.Sprintf(`%s %s business hours reviews contact`, query.BusinessType, query.Location),
	}

	seen := make(map[string]bool)
	var leads []*leadgen.Lead

	for _, variant := range variants {
		if len(leads) >= query.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return leads, err
		}

		searchURL := "https://www.bing.com/search?q=" + url.QueryEscape(variant)
		res, err := s.fetcher.Fetch(ctx, searchURL)
		if err != nil || res.StatusCode != 200 {
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
		if err != nil {
			continue
		}

		doc.Find("li.b_algo").EachWithBreak(func(_ int, result *goquery.Selection) bool {
			if len(leads) >= query.Limit {
				return false
			}
			lead := s.leadFromResult(ctx, result, query)
			if lead == nil || seen[lead.Website] {
				return true
			}
			seen[lead.Website] = true
			leads = append(leads, lead)
			return true
		})
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return searchRelevance(leads[i], query.BusinessType) > searchRelevance(leads[j], query.BusinessType)
	})

	return leads, nil
}

// leadFromResult builds a lead from one organic result element, or
// nil when the result has no usable business website.
func (s *SERPSource) leadFromResult(ctx context.Context, result *goquery.Selection, query leadgen.SearchQuery) *leadgen.Lead {
	titleElem := result.Find("h2 a").First()
	if titleElem.Length() == 0 {
		return nil
	}
	title := strings.TrimSpace(titleElem.Text())
	href, _ := titleElem.Attr("href")
	if !strings.HasPrefix(href, "http") {
		return nil
	}

	lower := strings.ToLower(href)
	for _, domain := range serpSkipDomains {
		if strings.Contains(lower, domain) {
			return nil
		}
	}

	resolved, err := s.resolver.Resolve(ctx, href)
	if err != nil || resolved == "" {
		return nil
	}
	if !leadgen.IsValidBusinessWebsite(resolved) {
		return nil
	}

	description := strings.TrimSpace(result.Find(".b_caption p").First().Text())
	if runes := []rune(description); len(runes) > 200 {
		description = string(runes[:200])
	}

	return &leadgen.Lead{
		Name:        leadgen.CleanCompanyName(title),
		Website:     resolved,
		Domain:      leadgen.ExtractDomain(resolved),
		Address:     addressFromResult(result, query.Location),
		Phone:       phoneFromResult(result),
		Description: description,
		Rating:      ratingFromResult(result),
		Hours:       hoursFromResult(result),
		Source:      s.Name(),
	}
}

// ratingFromResult looks for a numeric rating in dedicated rating
// elements first, then in star patterns in the result text.
func ratingFromResult(result *goquery.Selection) string {
	for _, selector := range ratingSelectors {
		elem := result.Find(selector).First()
		if elem.Length() == 0 {
			continue
		}
		if m := ratingRe.FindString(strings.TrimSpace(elem.Text())); m != "" {
			return m
		}
	}
	if m := ratingTextRe.FindStringSubmatch(result.Text()); m != nil {
		return m[1]
	}
	return ""
}

// hoursFromResult extracts an opening-hours range or status phrase
// from the result text.
func hoursFromResult(result *goquery.Selection) string {
	text := result.Text()
	if m := hoursRangeRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.ToLower(hoursStatusRe.FindString(text))
}

// phoneFromResult extracts the first US phone number from the result
// text, formatted.
func phoneFromResult(result *goquery.Selection) string {
	m := phoneRe.FindString(result.Text())
	if m == "" {
		return ""
	}
	return leadgen.FormatPhoneNumber(m)
}

// addressFromResult extracts a street address mentioning the searched
// location from the result text. Lengths outside 10-100 characters
// are discarded as noise.
func addressFromResult(result *goquery.Selection, location string) string {
	if location == "" {
		return ""
	}
	quoted := regexp.QuoteMeta(location)
	patterns := []string{
		`[0-9]+[\w\s,]+` + quoted + `[\w\s,]*[0-9]{5}`,
		`(?i)[0-9]+[\w\s,]+(?:street|st|avenue|ave|road|rd|drive|dr|boulevard|blvd)[\w\s,]*` + quoted,
		quoted + `[\w\s,]*[0-9]{5}`,
	}
	text := result.Text()
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		m := strings.TrimSpace(re.FindString(text))
		m = strings.Join(strings.Fields(m), " ")
		if len(m) > 10 && len(m) < 100 {
			return m
		}
	}
	return ""
}

// searchRelevance scores how well a lead's title and description match
// the requested business type, in [0, 1].
func searchRelevance(lead *leadgen.Lead, businessType string) float64 {
	businessType = strings.ToLower(businessType)
	name := strings.ToLower(lead.Name)
	description := strings.ToLower(lead.Description)

	var score float64
	if strings.Contains(name, businessType) {
		score += 0.8
	}

	words := strings.Fields(businessType)
	if len(words) == 0 {
		return 0
	}
	var nameHits, descHits int
	for _, word := range words {
		if strings.Contains(name, word) {
			nameHits++
		}
		if strings.Contains(description, word) {
			descHits++
		}
	}
	score += float64(nameHits) / float64(len(words)) * 0.5
	score += float64(descHits) / float64(len(words)) * 0.3

	if score > 1 {
		return 1
	}
	return score
}
