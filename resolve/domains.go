package resolve

// directoryDomains are hosts that are never a business's own website.
// A resolution that lands on one of these yields no website.
var directoryDomains = []string{
	"yellowpages.com", "yelp.com", "google.com",
	"facebook.com", "linkedin.com", "instagram.com",
}

// aggregatorDomains are filtered from decoded search-engine redirect
// targets. Besides directories and social networks this includes
// healthcare aggregators and insurers that rank for local business
// queries.
var aggregatorDomains = []string{
	"yelp.com", "facebook.com", "linkedin.com", "instagram.com",
	"healthgrades.com", "zocdoc.com", "deltadental.com",
	"principal.com", "humana.com", "yellowpages.com",
}

// redirectorIndicators mark generic link-wrapper URLs that need one hop
// of redirect following to reach the target site.
var redirectorIndicators = []string{
	"google.com/url", "facebook.com/l.php", "t.co/",
}
