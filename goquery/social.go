package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxSocialAnchors bounds how many anchors the social scan inspects
// per page, keeping extraction fast on link-heavy pages.
const maxSocialAnchors = 50

// socialRule describes how to recognize one platform's profile links.
type socialRule struct {
	platform string
	hosts    []string
	deny     []string
	require  []string
}

// Rules are checked in order and the first platform match per anchor
// wins. Deny substrings filter out share widgets, embeds and oauth
// endpoints; require substrings (YouTube only) keep channel pages and
// drop video links.
var socialRules = []socialRule{
	{platform: "facebook", hosts: []string{"facebook.com"}, deny: []string{"sharer", "share.php", "tr?", "ads", "campaign", "dialog", "plugins", "login"}},
	{platform: "linkedin", hosts: []string{"linkedin.com"}, deny: []string{"/sharing/", "/share/", "sharearticle", "oauth"}},
	{platform: "twitter", hosts: []string{"twitter.com", "x.com"}, deny: []string{"intent/tweet", "share?", "oauth", "api."}},
	{platform: "instagram", hosts: []string{"instagram.com"}, deny: []string{"embed", "share", "oauth"}},
	{platform: "youtube", hosts: []string{"youtube.com", "youtu.be"}, require: []string{"/channel/", "/user/", "/c/", "@"}},
	{platform: "tiktok", hosts: []string{"tiktok.com"}, deny: []string{"share", "embed", "oauth"}},
	{platform: "pinterest", hosts: []string{"pinterest.com"}, deny: []string{"pin/", "widget", "share"}},
	{platform: "snapchat", hosts: []string{"snapchat.com"}, deny: []string{"share", "oauth"}},
	{platform: "whatsapp", hosts: []string{"wa.me", "whatsapp.com"}, deny: []string{"share", "oauth"}},
	{platform: "telegram", hosts: []string{"t.me", "telegram.me"}, deny: []string{"share", "oauth"}},
}

// Social returns the first qualifying profile URL per platform found
// in the page's anchors. URLs are normalized: query and trailing slash
// stripped, scheme forced to https where missing.
func (p *Page) Social() map[string]string {
	social := make(map[string]string)

	p.doc.Find("a[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= maxSocialAnchors {
			return false
		}
		href, _ := sel.Attr("href")
		href = normalizeSocialHref(href)
		if href == "" {
			return true
		}
		lower := strings.ToLower(href)

		for _, rule := range socialRules {
			if social[rule.platform] != "" || !matchesHost(lower, rule.hosts) {
				continue
			}
			if containsAny(lower, rule.deny) {
				break
			}
			if len(rule.require) > 0 && !containsAny(lower, rule.require) {
				break
			}
			social[rule.platform] = cleanSocialURL(href)
			break
		}
		return true
	})

	return social
}

// normalizeSocialHref turns an anchor href into an absolute URL
// suitable for platform matching, or empty when it cannot qualify.
// Relative paths are skipped and schemeless hrefs are only accepted
// when they already name a known platform.
func normalizeSocialHref(href string) string {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return ""
	case strings.HasPrefix(href, "http"):
		return href
	}
	lower := strings.ToLower(href)
	for _, platform := range []string{"facebook", "linkedin", "twitter", "instagram", "youtube"} {
		if strings.Contains(lower, platform) {
			return "https://" + href
		}
	}
	return ""
}

// cleanSocialURL strips the query string and trailing slash.
func cleanSocialURL(rawURL string) string {
	if i := strings.Index(rawURL, "?"); i >= 0 {
		rawURL = rawURL[:i]
	}
	rawURL = strings.TrimRight(rawURL, "/")
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "https://" + rawURL
	}
	return rawURL
}

func matchesHost(lower string, hosts []string) bool {
	return containsAny(lower, hosts)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
