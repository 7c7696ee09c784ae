package c2padocs

// ExtractResult holds the output of content extraction.
type ExtractResult struct {
	Title       string
	ContentHTML string
}

// Extractor extracts the main content from raw HTML, discarding
// navigation and other boilerplate.
type Extractor interface {
	Extract(rawHTML string) (*ExtractResult, error)
}
