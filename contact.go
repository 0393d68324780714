package leadgen

import (
	"context"
	"regexp"
	"strings"
)

// ContactInfo holds contact signals extracted from a business website.
type ContactInfo struct {
	// Email is the best email found, or "" if none passed policy.
	Email string

	// EmailOrigin distinguishes a synthesized fallback email
	// (EmailOriginGenerated) from one found on a page
	// (EmailOriginScraped). Empty when Email is empty.
	EmailOrigin string

	// Phones holds normalized "(NNN) NNN-NNNN" numbers in discovery
	// order, deduplicated.
	Phones []string

	// Social maps platform name (see SocialPlatforms) to the first
	// legitimate profile URL found per platform.
	Social map[string]string
}

// ContactExtractor extracts contact and social-media signals from a
// business website. Implementations visit a bounded list of candidate
// pages and stop early once an email or a social link is found.
type ContactExtractor interface {
	Extract(ctx context.Context, websiteURL string) (*ContactInfo, error)
}

// invalidEmailDomains are placeholder domains that never belong to a
// real business.
var invalidEmailDomains = map[string]bool{
	"example.com":    true,
	"test.com":       true,
	"localhost":      true,
	"domain.com":     true,
	"email.com":      true,
	"sample.com":     true,
	"demo.com":       true,
	"your-email.com": true,
	"yourdomain.com": true,
	"yoursite.com":   true,
	"website.com":    true,
}

var (
	emailLocalInvalidRe = regexp.MustCompile(`[<>()\[\]\\,;:\s@"']`)
	emailDomainRe       = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	emailTLDRe          = regexp.MustCompile(`^[a-zA-Z]{2,6}$`)
)

// IsValidBusinessEmail reports whether email looks like a deliverable
// business email. Small businesses often use consumer providers, so the
// policy only rejects structurally invalid addresses, placeholder
// domains, and automated mailboxes.
func IsValidBusinessEmail(email string) bool {
	if email == "" || strings.Count(email, "@") != 1 {
		return false
	}

	at := strings.Index(email, "@")
	local := strings.TrimSpace(email[:at])
	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))

	if local == "" || len(local) > 64 {
		return false
	}
	if len(domain) < 4 || !strings.Contains(domain, ".") {
		return false
	}
	if invalidEmailDomains[domain] {
		return false
	}
	if strings.HasPrefix(domain, "www.") || strings.HasSuffix(domain, ".local") {
		return false
	}

	lowerLocal := strings.ToLower(local)
	if strings.Contains(lowerLocal, "noreply") || strings.Contains(lowerLocal, "no-reply") {
		return false
	}
	if emailLocalInvalidRe.MatchString(local) {
		return false
	}
	if !emailDomainRe.MatchString(domain) {
		return false
	}

	parts := strings.Split(domain, ".")
	return emailTLDRe.MatchString(parts[len(parts)-1])
}

var nonDigitRe = regexp.MustCompile(`\D`)

// FormatPhoneNumber normalizes a US phone number to "(NNN) NNN-NNNN".
// Numbers that are not 10 digits (or 11 with a leading 1) are returned
// unchanged.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	digits := nonDigitRe.ReplaceAllString(phone, "")

	switch {
	case len(digits) == 10:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	case len(digits) == 11 && digits[0] == '1':
		return "(" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
	}
	return phone
}
