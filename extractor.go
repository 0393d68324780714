package leadgen

// TextExtractor extracts the visible main text from HTML, removing
// boilerplate (nav, footer, scripts). Used as the lowest-precedence
// layer of contact extraction: bare pattern matches over visible text.
type TextExtractor interface {
	Extract(html string) (string, error)
}
