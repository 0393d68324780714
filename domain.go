package leadgen

import (
	"net/url"
	"regexp"
	"strings"
)

// nonBusinessDomainPatterns rejects aggregator, social, government,
// education, encyclopedia, and blog-platform domains, plus editorial
// keywords that mark directory/review/news sites rather than the
// business's own website. Matched as substrings of the domain.
var nonBusinessDomainPatterns = []string{
	"yellowpages.com", "yelp.com", "google.com", "facebook.com", "linkedin.com",
	"instagram.com", "twitter.com", "wordpress.com", "blogspot.com", "medium.com",
	"wix.com", "squarespace.com", ".gov", ".edu", "wikipedia.org", "amazon.com",
	"healthgrades.com", "webmd.com", "threebestrated.com",
	"magazine", "directory", "rated", "society", "association", "blog", "news",
}

// IsValidBusinessWebsite reports whether url points at a business's own
// website rather than a directory, social network, blog platform, or
// other aggregator. Pure; no network access.
func IsValidBusinessWebsite(rawURL string) bool {
	if !strings.HasPrefix(rawURL, "http") {
		return false
	}

	domain := ExtractDomain(rawURL)
	if domain == "" {
		return false
	}

	for _, pattern := range nonBusinessDomainPatterns {
		if strings.Contains(domain, pattern) {
			return false
		}
	}
	return true
}

// ExtractDomain returns the lowercased host of a URL, or "" if the URL
// does not parse.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

var (
	titleSuffixRe = regexp.MustCompile(`\s*[-|:]\s*.*$`)
	titleParenRe  = regexp.MustCompile(`\s*\(.*?\)$`)
)

// CleanCompanyName extracts a company name from a page or search-result
// title by stripping separator suffixes ("Acme Dental - Austin, TX")
// and trailing parentheticals.
func CleanCompanyName(title string) string {
	title = titleSuffixRe.ReplaceAllString(title, "")
	title = titleParenRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

var domainNameCleanRe = regexp.MustCompile(`[^\w\s-]`)

// GuessDomainFromName constructs a candidate "name.com" domain from a
// business name by dropping punctuation and collapsing whitespace.
// Returns "" when the name is too short to make a plausible domain.
func GuessDomainFromName(name string) string {
	clean := strings.TrimSpace(domainNameCleanRe.ReplaceAllString(name, ""))
	domain := strings.ToLower(strings.Join(strings.Fields(clean), ""))
	if len(domain) <= 3 {
		return ""
	}
	return domain + ".com"
}
