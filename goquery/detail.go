package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// detailWebsiteSelectors locate the business's own website link on a
// directory detail page, ordered from most to least specific.
var detailWebsiteSelectors = []string{
	`div.links>a[href^="http"]`,
	"div.links a",
	"a.business-name",
	`a[href*="website"]`,
	`a[class*="website"]`,
	`a[title*="website"]`,
	`a[data-tracking*="website"]`,
	`a[title*="Visit"]`,
	".primary-cta a",
	".website-link a",
	`.business-card a[href^="http"]`,
	`.info-section a[href^="http"]`,
	"[data-business-website]",
	`a[href^="http"]`,
}

// detailExcludedDomains are hosts that can never be the business's own
// website when found on a directory detail page.
var detailExcludedDomains = []string{
	"yellowpages.com", "yelp.com", "facebook.com", "twitter.com",
	"instagram.com", "linkedin.com", "google.com", "maps.google.com",
	"youtube.com", "tiktok.com", "pinterest.com",
}

var detailTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:website|site|web)[:\s]+(?:www\.)?([a-zA-Z0-9][a-zA-Z0-9\-.]*\.[a-zA-Z]{2,})`),
	regexp.MustCompile(`(?i)(?:visit|see)[:\s]+(?:www\.)?([a-zA-Z0-9][a-zA-Z0-9\-.]*\.[a-zA-Z]{2,})`),
	regexp.MustCompile(`(?i)www\.([a-zA-Z0-9][a-zA-Z0-9\-.]*\.[a-zA-Z]{2,})`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?([a-zA-Z0-9][a-zA-Z0-9\-.]*\.[a-zA-Z]{2,})`),
	regexp.MustCompile(`(?i)([a-zA-Z0-9][a-zA-Z0-9\-]*\.(?:com|net|org|info|biz))\b`),
}

// ExtractExternalWebsite digs the business's own website URL out of a
// directory detail page. Anchor selectors are tried first, then
// website mentions in the visible text, then any external anchor as a
// last resort. Returns empty when nothing qualifies.
func ExtractExternalWebsite(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, selector := range detailWebsiteSelectors {
		found := ""
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			href = normalizeDetailHref(href)
			if href == "" || containsAny(strings.ToLower(href), detailExcludedDomains) {
				return true
			}
			found = href
			return false
		})
		if found != "" {
			return found
		}
	}

	text := doc.Text()
	for _, pattern := range detailTextPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			domain := strings.Trim(m[1], ".,;:!?")
			if len(domain) <= 3 || !strings.Contains(domain, ".") {
				continue
			}
			if containsAny(strings.ToLower(domain), []string{
				"yellowpages", "facebook", "twitter", "instagram",
				"linkedin", "google", "yelp", "youtube", "tiktok", "pinterest",
			}) {
				continue
			}
			if strings.HasPrefix(domain, "www.") {
				return "https://" + domain
			}
			return "https://www." + domain
		}
	}

	// Last resort: any sufficiently long external anchor.
	found := ""
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, "http") || len(href) <= 10 {
			return true
		}
		if containsAny(strings.ToLower(href), []string{"yellowpages.com", "facebook.com", "twitter.com", "yelp.com", "google.com"}) {
			return true
		}
		found = href
		return false
	})
	return found
}

// normalizeDetailHref absolutizes a detail-page href, skipping
// relative paths and mailto links.
func normalizeDetailHref(href string) string {
	href = strings.TrimSpace(href)
	switch {
	case href == "" || strings.HasPrefix(href, "mailto:"):
		return ""
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return ""
	case strings.HasPrefix(href, "http"):
		return href
	case strings.Contains(href, "."):
		return "https://" + href
	}
	return ""
}
