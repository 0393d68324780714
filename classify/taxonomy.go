package classify

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// IndustryBucket maps a set of business-name keywords to an industry
// label. Buckets are evaluated in order and the first match wins.
type IndustryBucket struct {
	Industry string   `yaml:"industry"`
	Keywords []string `yaml:"keywords"`
}

// DemoBusiness is a single canned business used when live search
// produces no results.
type DemoBusiness struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Street  string `yaml:"street"`
	Website string `yaml:"website"`
}

// DemoBucket groups demo businesses under a business-type substring.
type DemoBucket struct {
	Match      string         `yaml:"match"`
	Businesses []DemoBusiness `yaml:"businesses"`
}

// DemoCatalog holds the canned businesses per type plus the bucket to
// fall back to when no type matches.
type DemoCatalog struct {
	Buckets  []DemoBucket `yaml:"buckets"`
	Fallback string       `yaml:"fallback"`
}

// Taxonomy is the full classification vocabulary. The zero value is
// not usable; start from DefaultTaxonomy or Load.
type Taxonomy struct {
	Industries    []IndustryBucket `yaml:"industries"`
	MajorCities   []string         `yaml:"major_cities"`
	MidSizeCities []string         `yaml:"mid_size_cities"`
	Demo          DemoCatalog      `yaml:"demo"`
}

// Load reads a taxonomy from a YAML file.
func Load(path string) (Taxonomy, error) {
	var tax Taxonomy
	b, err := os.ReadFile(path)
	if err != nil {
		return tax, err
	}
	err = yaml.Unmarshal(b, &tax)
	return tax, err
}

// DefaultTaxonomy returns the built-in classification vocabulary.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Industries: []IndustryBucket{
			{Industry: "Healthcare", Keywords: []string{"dental", "medical", "clinic", "doctor", "health", "hospital", "pharmacy", "wellness", "therapy", "rehabilitation", "optometry", "chiropractic"}},
			{Industry: "Food & Beverage", Keywords: []string{"restaurant", "cafe", "coffee", "pizza", "bakery", "grill", "bar", "diner", "bistro", "kitchen", "food", "catering", "tavern"}},
			{Industry: "Fitness & Wellness", Keywords: []string{"gym", "fitness", "yoga", "pilates", "crossfit", "martial arts", "boxing", "training", "sports"}},
			{Industry: "Beauty & Personal Care", Keywords: []string{"salon", "spa", "beauty", "hair", "nail", "massage", "skincare", "barber", "cosmetic"}},
			{Industry: "Legal Services", Keywords: []string{"law", "legal", "attorney", "lawyer", "firm", "court", "litigation"}},
			{Industry: "Real Estate", Keywords: []string{"real estate", "realtor", "property", "realty", "homes", "mortgage", "lending"}},
			{Industry: "Automotive", Keywords: []string{"auto", "car", "automotive", "tire", "repair", "garage", "dealership", "mechanic"}},
			{Industry: "Retail", Keywords: []string{"store", "shop", "retail", "boutique", "market", "outlet", "plaza"}},
			{Industry: "Professional Services", Keywords: []string{"consulting", "accounting", "insurance", "financial", "marketing", "advertising", "design"}},
			{Industry: "Technology", Keywords: []string{"tech", "software", "computer", "it ", "digital", "web", "mobile", "app"}},
		},
		MajorCities: []string{
			"new york", "los angeles", "chicago", "houston", "philadelphia", "phoenix",
			"san antonio", "san diego", "dallas", "san jose", "austin", "jacksonville",
			"fort worth", "columbus", "charlotte", "san francisco", "indianapolis",
			"seattle", "denver", "washington", "boston", "el paso", "detroit",
			"nashville", "portland", "oklahoma city", "las vegas", "baltimore",
			"milwaukee", "albuquerque", "tucson", "fresno", "sacramento",
			"kansas city", "mesa", "atlanta", "omaha", "colorado springs", "raleigh",
			"miami", "cleveland", "tulsa", "oakland", "minneapolis", "wichita",
			"arlington",
		},
		MidSizeCities: []string{
			"albany", "annapolis", "augusta", "baton rouge", "bismarck", "boise",
			"cheyenne", "columbia", "concord", "des moines", "dover", "frankfort",
			"harrisburg", "hartford", "helena", "honolulu", "jackson",
			"jefferson city", "juneau", "lansing", "lincoln", "little rock",
			"madison", "montgomery", "montpelier", "olympia", "pierre",
			"providence", "richmond", "saint paul", "salem", "salt lake city",
			"santa fe", "springfield", "tallahassee", "topeka", "trenton",
		},
		Demo: DemoCatalog{
			Fallback: "restaurant",
			Buckets: []DemoBucket{
				{
					Match: "dentist",
					Businesses: []DemoBusiness{
						{Name: "SmileCare Dental", Phone: "(555) 123-4567", Street: "123 Main St", Website: "https://smilecare.example.com"},
						{Name: "Bright Dental Group", Phone: "(555) 234-5678", Street: "456 Oak Ave", Website: "https://brightdental.example.com"},
						{Name: "Family Dentistry Plus", Phone: "(555) 345-6789", Street: "789 Pine Rd", Website: "https://familydentistryplus.example.com"},
					},
				},
				{
					Match: "salon",
					Businesses: []DemoBusiness{
						{Name: "Elegant Hair Studio", Phone: "(555) 111-2222", Street: "321 Beauty Blvd", Website: "https://eleganthair.example.com"},
						{Name: "Trendy Cuts & Colors", Phone: "(555) 222-3333", Street: "654 Style St", Website: "https://trendycuts.example.com"},
						{Name: "Luxe Beauty Lounge", Phone: "(555) 333-4444", Street: "987 Glamour Ave", Website: "https://luxebeauty.example.com"},
					},
				},
				{
					Match: "restaurant",
					Businesses: []DemoBusiness{
						{Name: "The Garden Bistro", Phone: "(555) 444-5555", Street: "159 Food Court", Website: "https://gardenbistro.example.com"},
						{Name: "Urban Kitchen", Phone: "(555) 555-6666", Street: "753 Dining Dr", Website: "https://urbankitchen.example.com"},
						{Name: "Coastal Cuisine", Phone: "(555) 666-7777", Street: "852 Harbor View", Website: "https://coastalcuisine.example.com"},
					},
				},
			},
		},
	}
}

// DemoBusinesses returns the canned businesses for a business type,
// matching by substring against each bucket and falling back to the
// catalog's fallback bucket.
func (c DemoCatalog) DemoBusinesses(businessType string) []DemoBusiness {
	lower := strings.ToLower(businessType)
	for _, b := range c.Buckets {
		if b.Match != "" && strings.Contains(lower, b.Match) {
			return b.Businesses
		}
	}
	for _, b := range c.Buckets {
		if b.Match == c.Fallback {
			return b.Businesses
		}
	}
	return nil
}
