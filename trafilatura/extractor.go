// Package trafilatura extracts the readable main content from fetched
// documentation pages, stripping navigation chrome before the Markdown
// conversion step.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/akowalczyk/c2padocs"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements c2padocs.Extractor at compile time.
var _ c2padocs.Extractor = (*Extractor)(nil)

// Extractor pulls the main article content out of a documentation page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the main content as HTML. The
// fallback heuristics stay enabled because the allowed documentation hosts
// serve a mix of article-style and generated reference pages.
func (e *Extractor) Extract(rawHTML string) (*c2padocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, c2padocs.Errorf(c2padocs.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, c2padocs.Errorf(c2padocs.EINTERNAL, "extract content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, c2padocs.Errorf(c2padocs.EINTERNAL, "render content: %v", err)
		}
		contentHTML = buf.String()
	}

	return &c2padocs.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
