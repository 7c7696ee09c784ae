// Package htmltomarkdown renders extracted documentation HTML as Markdown
// for terminal and tool output.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/akowalczyk/c2padocs"
)

// Ensure Converter implements c2padocs.Converter at compile time.
var _ c2padocs.Converter = (*Converter)(nil)

// Converter turns documentation HTML into CommonMark. The table plugin
// matters here: spec and reference pages lean heavily on tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", c2padocs.Errorf(c2padocs.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", c2padocs.Errorf(c2padocs.EINTERNAL, "convert to markdown: %v", err)
	}

	return result, nil
}
