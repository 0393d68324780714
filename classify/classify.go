// Package classify derives segmentation fields for leads from their
// contact data, a keyword industry taxonomy and a city tier list.
package classify

import (
	"strings"

	"github.com/fwojciec/leadgen"
)

// Classifier computes the derived fields of a lead. It is stateless
// beyond its taxonomy and safe for concurrent use.
type Classifier struct {
	tax Taxonomy
}

// New returns a Classifier backed by the given taxonomy.
func New(tax Taxonomy) *Classifier {
	return &Classifier{tax: tax}
}

// Classify fills in all derived fields of the lead in place.
func (c *Classifier) Classify(lead *leadgen.Lead) {
	lead.Industry = c.Industry(lead.Name)
	lead.LocationTier = c.LocationTier(lead.Address)
	lead.ContactLevel = ContactLevel(lead)
	lead.LeadType = LeadType(lead)
	lead.PriorityScore = PriorityScore(lead)
}

// Industry returns the industry label for a business name. Buckets
// are checked in taxonomy order and the first keyword hit wins; names
// matching no bucket classify as General.
func (c *Classifier) Industry(name string) string {
	if name == "" {
		return "General"
	}
	lower := strings.ToLower(name)
	for _, bucket := range c.tax.Industries {
		for _, kw := range bucket.Keywords {
			if strings.Contains(lower, kw) {
				return bucket.Industry
			}
		}
	}
	return "General"
}

// LocationTier returns the geographic tier for an address. Major
// metro names take precedence over mid-size city names.
func (c *Classifier) LocationTier(address string) string {
	if address == "" {
		return "Unknown"
	}
	lower := strings.ToLower(address)
	for _, city := range c.tax.MajorCities {
		if strings.Contains(lower, city) {
			return "Tier 1 - Major Metro"
		}
	}
	for _, city := range c.tax.MidSizeCities {
		if strings.Contains(lower, city) {
			return "Tier 2 - Mid-Size City"
		}
	}
	return "Tier 3 - Small City/Town"
}

// contactScore weighs direct contact channels. Phone and website
// count 3 each, email 2, plus one point per social profile.
func contactScore(lead *leadgen.Lead) int {
	score := 0
	if strings.TrimSpace(lead.Phone) != "" {
		score += 3
	}
	if strings.TrimSpace(lead.Website) != "" {
		score += 3
	}
	if strings.TrimSpace(lead.Email) != "" {
		score += 2
	}
	return score + lead.SocialCount()
}

// ContactLevel maps the contact score onto the four completeness
// levels.
func ContactLevel(lead *leadgen.Lead) string {
	switch score := contactScore(lead); {
	case score >= 7:
		return "Premium"
	case score >= 5:
		return "High"
	case score >= 3:
		return "Medium"
	default:
		return "Basic"
	}
}

// LeadType classifies a lead by which contact channels it carries.
func LeadType(lead *leadgen.Lead) string {
	hasPhone := strings.TrimSpace(lead.Phone) != ""
	hasWebsite := strings.TrimSpace(lead.Website) != ""
	hasEmail := strings.TrimSpace(lead.Email) != ""
	socials := lead.SocialCount()

	switch {
	case hasPhone && hasWebsite && hasEmail:
		return "Premium Lead"
	case hasPhone && hasWebsite:
		return "Sales-Ready Lead"
	case hasPhone && socials >= 2:
		return "Social-Connected Lead"
	case hasPhone:
		return "Prospect Lead"
	case hasWebsite:
		return "Website Lead"
	case socials >= 1:
		return "Social Lead"
	default:
		return "Basic Lead"
	}
}

// PriorityScore ranks a lead for outreach ordering. The score is a
// deterministic function of the contact fields.
func PriorityScore(lead *leadgen.Lead) int {
	score := 0
	if lead.Phone != "" {
		score += 3
	}
	if lead.Website != "" {
		score += 2
	}
	if lead.Email != "" {
		score += 2
	}
	if lead.Address != "" {
		score++
	}
	return score
}
