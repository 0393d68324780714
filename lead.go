package leadgen

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Email origin values. Callers must be able to tell a synthesized email
// apart from one actually found on a page.
const (
	EmailOriginScraped   = "scraped"
	EmailOriginGenerated = "generated"
)

// SocialPlatforms lists the supported social-media platforms in a stable
// order. Lead.Social and Lead.SetSocial accept exactly these names.
var SocialPlatforms = []string{
	"facebook",
	"linkedin",
	"twitter",
	"instagram",
	"youtube",
	"tiktok",
	"pinterest",
	"snapchat",
	"whatsapp",
	"telegram",
}

// Lead represents a candidate business record with contact and
// classification fields. A Lead is constructed by a search source,
// enriched in place by the resolver and contact extractor, classified
// and scored exactly once before leaving the orchestrator, and then
// merged into the persisted collection.
type Lead struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Domain      string `json:"domain"`
	Email       string `json:"email"`
	EmailOrigin string `json:"emailOrigin,omitempty"`
	Address     string `json:"address"`

	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	TikTok    string `json:"tiktok"`
	Pinterest string `json:"pinterest"`
	Snapchat  string `json:"snapchat"`
	WhatsApp  string `json:"whatsapp"`
	Telegram  string `json:"telegram"`

	// Provenance tag: which pipeline path produced this lead
	// (e.g. "bing_enhanced", "directory_jsonld", "demo_data").
	Source string `json:"source"`

	Description string `json:"description"`
	Rating      string `json:"rating"`
	Hours       string `json:"hours"`

	// Derived fields, recomputed by the classifier. Never mutated
	// independently.
	Industry      string `json:"industry"`
	LocationTier  string `json:"locationTier"`
	LeadType      string `json:"leadType"`
	ContactLevel  string `json:"contactLevel"`
	PriorityScore int    `json:"priorityScore"`

	// Set exactly once when the lead first enters the pipeline's
	// output set. Deduplication never updates it.
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the lead contains invalid fields.
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return Errorf(EINVALID, "lead name required")
	}
	return nil
}

// Signature returns the lead's identity key for deduplication:
// lowercased trimmed name, plus the phone if present, else the website
// if present. A lead without a name has no identity and returns "".
func (l *Lead) Signature() string {
	name := strings.ToLower(strings.TrimSpace(l.Name))
	if name == "" {
		return ""
	}
	if phone := strings.TrimSpace(l.Phone); phone != "" {
		return name + "|" + phone
	}
	if website := strings.TrimSpace(l.Website); website != "" {
		return name + "|" + website
	}
	return name
}

// Social returns the URL for a platform, or "" for unknown platforms.
func (l *Lead) Social(platform string) string {
	switch platform {
	case "facebook":
		return l.Facebook
	case "linkedin":
		return l.LinkedIn
	case "twitter":
		return l.Twitter
	case "instagram":
		return l.Instagram
	case "youtube":
		return l.YouTube
	case "tiktok":
		return l.TikTok
	case "pinterest":
		return l.Pinterest
	case "snapchat":
		return l.Snapchat
	case "whatsapp":
		return l.WhatsApp
	case "telegram":
		return l.Telegram
	}
	return ""
}

// SetSocial sets the URL for a platform. Unknown platforms are ignored.
func (l *Lead) SetSocial(platform, url string) {
	switch platform {
	case "facebook":
		l.Facebook = url
	case "linkedin":
		l.LinkedIn = url
	case "twitter":
		l.Twitter = url
	case "instagram":
		l.Instagram = url
	case "youtube":
		l.YouTube = url
	case "tiktok":
		l.TikTok = url
	case "pinterest":
		l.Pinterest = url
	case "snapchat":
		l.Snapchat = url
	case "whatsapp":
		l.WhatsApp = url
	case "telegram":
		l.Telegram = url
	}
}

// SocialCount returns the number of platforms with a profile URL set.
func (l *Lead) SocialCount() int {
	n := 0
	for _, p := range SocialPlatforms {
		if l.Social(p) != "" {
			n++
		}
	}
	return n
}

// FillFrom copies contact info from info into the lead, filling empty
// fields only. Non-empty values are never overwritten.
func (l *Lead) FillFrom(info *ContactInfo) {
	if info == nil {
		return
	}
	if l.Email == "" && info.Email != "" {
		l.Email = info.Email
		l.EmailOrigin = info.EmailOrigin
	}
	if l.Phone == "" && len(info.Phones) > 0 {
		l.Phone = info.Phones[0]
	}
	for platform, url := range info.Social {
		if url != "" && l.Social(platform) == "" {
			l.SetSocial(platform, url)
		}
	}
}

// MergeLeads merges incoming leads into existing ones using the identity
// signature. Existing leads are never removed or reordered; incoming
// leads whose signature is novel are appended in order, which also
// collapses duplicates within incoming (first occurrence wins).
func MergeLeads(existing, incoming []*Lead) []*Lead {
	seen := make(map[string]struct{}, len(existing))
	for _, l := range existing {
		if sig := l.Signature(); sig != "" {
			seen[sig] = struct{}{}
		}
	}

	merged := make([]*Lead, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	for _, l := range incoming {
		sig := l.Signature()
		if sig == "" {
			continue
		}
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		merged = append(merged, l)
	}

	return merged
}

// SortByPriority sorts leads by priority score, highest first. The sort
// is stable so equal scores keep their relative order.
func SortByPriority(leads []*Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].PriorityScore > leads[j].PriorityScore
	})
}

// SortByCreatedAt sorts leads by creation time, newest first.
func SortByCreatedAt(leads []*Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}

// FilterByType returns the leads whose lead type matches leadType.
func FilterByType(leads []*Lead, leadType string) []*Lead {
	var out []*Lead
	for _, l := range leads {
		if l.LeadType == leadType {
			out = append(out, l)
		}
	}
	return out
}

// LeadStats summarizes a lead collection.
type LeadStats struct {
	Total            int
	ByType           map[string]int
	ByContactLevel   map[string]int
	WithPhone        int
	WithEmail        int
	WithWebsite      int
	CompleteProfiles int
}

// ComputeStats computes summary statistics for a lead collection.
func ComputeStats(leads []*Lead) LeadStats {
	stats := LeadStats{
		Total:          len(leads),
		ByType:         make(map[string]int),
		ByContactLevel: make(map[string]int),
	}
	for _, l := range leads {
		if l.LeadType != "" {
			stats.ByType[l.LeadType]++
		}
		if l.ContactLevel != "" {
			stats.ByContactLevel[l.ContactLevel]++
		}
		if l.Phone != "" {
			stats.WithPhone++
		}
		if l.Email != "" {
			stats.WithEmail++
		}
		if l.Website != "" {
			stats.WithWebsite++
		}
		if l.Phone != "" && l.Email != "" && l.Website != "" {
			stats.CompleteProfiles++
		}
	}
	return stats
}

// LeadStore persists lead collections keyed by owner. Load and Save have
// whole-collection read/replace semantics, not incremental updates.
// Implementations must guarantee that concurrent saves for the same
// owner key never interleave into a corrupt collection.
type LeadStore interface {
	Load(ctx context.Context, ownerKey string) ([]*Lead, error)
	Save(ctx context.Context, ownerKey string, leads []*Lead) error
}
