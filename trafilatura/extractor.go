// Package trafilatura extracts the readable text of a web page,
// stripping boilerplate like navigation, sidebars and footers.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/leadgen"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements leadgen.TextExtractor at compile time.
var _ leadgen.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract visible text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main textual content of the page. Contact
// details often live in page furniture, so the fallback readability
// heuristics stay enabled.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", leadgen.Errorf(leadgen.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return result.ContentText, nil
}
