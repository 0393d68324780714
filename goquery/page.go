// Package goquery implements HTML parsing for contact extraction,
// search result pages and business directory listings.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/leadgen"
)

var (
	emailRe        = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9._%+-]*@[A-Za-z0-9][A-Za-z0-9.-]*\.[A-Za-z]{2,}`)
	labeledEmailRe = regexp.MustCompile(`(?i)(?:email|contact|info|support|sales|hello|inquiries)[:\s]+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)
	phoneRe        = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Page is a parsed HTML document with contact-oriented accessors.
type Page struct {
	doc *goquery.Document
}

// ParsePage parses an HTML document.
func ParsePage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, leadgen.Errorf(leadgen.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc}, nil
}

// Emails returns the valid business emails found on the page, lowercased
// and deduplicated, in discovery order. Sources are layered: mailto
// links first, then labeled and bare addresses in the visible text,
// then email input placeholders and data-email attributes.
func (p *Page) Emails() []string {
	seen := make(map[string]bool)
	var emails []string
	add := func(email string) {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" || seen[email] || !leadgen.IsValidBusinessEmail(email) {
			return
		}
		seen[email] = true
		emails = append(emails, email)
	}

	p.doc.Find(`a[href^="mailto:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		email := strings.TrimPrefix(href, "mailto:")
		if i := strings.Index(email, "?"); i >= 0 {
			email = email[:i]
		}
		add(email)
	})

	text := p.doc.Text()
	for _, m := range labeledEmailRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range emailRe.FindAllString(text, -1) {
		add(strings.Trim(m, ".,;:!?"))
	}

	p.doc.Find("input[placeholder], label[placeholder]").Each(func(_ int, sel *goquery.Selection) {
		placeholder, _ := sel.Attr("placeholder")
		if strings.Contains(placeholder, "@") {
			add(placeholder)
		}
	})
	p.doc.Find("[data-email]").Each(func(_ int, sel *goquery.Selection) {
		email, _ := sel.Attr("data-email")
		add(email)
	})

	return emails
}

// EmailsInText returns the valid business emails found in plain text,
// lowercased and deduplicated, in discovery order.
func EmailsInText(text string) []string {
	seen := make(map[string]bool)
	var emails []string
	for _, m := range emailRe.FindAllString(text, -1) {
		email := strings.ToLower(strings.Trim(m, ".,;:!?"))
		if email == "" || seen[email] || !leadgen.IsValidBusinessEmail(email) {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails
}

// Phones returns formatted US phone numbers found in the visible text,
// deduplicated in discovery order.
func (p *Page) Phones() []string {
	seen := make(map[string]bool)
	var phones []string
	for _, m := range phoneRe.FindAllString(p.doc.Text(), -1) {
		formatted := leadgen.FormatPhoneNumber(m)
		if formatted == "" || seen[formatted] {
			continue
		}
		seen[formatted] = true
		phones = append(phones, formatted)
	}
	return phones
}

// HasContactForm reports whether the page contains a form whose class
// or id mentions contact. Its presence is used as a signal that a
// synthesized address like info@domain is plausibly monitored.
func (p *Page) HasContactForm() bool {
	found := false
	p.doc.Find("form").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		if strings.Contains(strings.ToLower(class), "contact") ||
			strings.Contains(strings.ToLower(id), "contact") {
			found = true
			return false
		}
		return true
	})
	return found
}

// FallbackEmail synthesizes a plausible business email for the site
// when the page carries a contact form. It tries common mailbox
// prefixes against the site's domain and returns the first that
// passes validation, or empty when none do or no form is present.
func (p *Page) FallbackEmail(siteURL string) string {
	if !p.HasContactForm() {
		return ""
	}
	u, err := url.Parse(siteURL)
	if err != nil {
		return ""
	}
	domain := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	if domain == "" || !strings.Contains(domain, ".") {
		return ""
	}
	for _, prefix := range []string{"info", "contact", "hello", "sales", "support"} {
		email := prefix + "@" + domain
		if leadgen.IsValidBusinessEmail(email) {
			return email
		}
	}
	return ""
}
