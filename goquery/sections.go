// Package goquery segments specification HTML into anchor-addressable
// sections using CSS selection over the parsed document tree.
package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akowalczyk/c2padocs"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxSectionChars caps the body collected under one heading.
const maxSectionChars = 4000

// boilerplateSelector matches navigation and chrome that must not leak into
// section text.
const boilerplateSelector = "nav, aside, header, footer, script, style, noscript, #toc, .toc, .navbar, .sidebar"

// Ensure Parser implements c2padocs.SectionParser at compile time.
var _ c2padocs.SectionParser = (*Parser)(nil)

// Parser builds sections by walking h2/h3/h4 headings and collecting each
// heading's following siblings up to the next heading.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseSections segments rawHTML into sections. Malformed sub-sections are
// reported in ParseResult.Skipped and dropped; only an unparsable document
// fails as a whole.
func (p *Parser) ParseSections(rawHTML string, source c2padocs.Source) (*c2padocs.ParseResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, c2padocs.Errorf(c2padocs.EINVALID, "empty HTML input for source %q", source.ID)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, c2padocs.Errorf(c2padocs.EINVALID, "failed to parse HTML for source %q: %v", source.ID, err)
	}

	doc.Find(boilerplateSelector).Remove()

	result := &c2padocs.ParseResult{}
	anchorCounts := make(map[string]int)

	doc.Find("h2, h3, h4").Each(func(i int, h *goquery.Selection) {
		title := c2padocs.NormalizeText(h.Text())
		if title == "" {
			result.Skipped = append(result.Skipped, fmt.Sprintf("heading %d has no title", i))
			return
		}

		text := capRunes(collectBody(h.Nodes[0]), maxSectionChars)
		if text == "" {
			// Container headings with no body of their own carry no
			// searchable content.
			return
		}

		anchor, ok := h.Attr("id")
		if !ok || anchor == "" {
			anchor = c2padocs.GenerateAnchor(title)
		}
		if anchor == "" {
			result.Skipped = append(result.Skipped, fmt.Sprintf("heading %q yields no usable anchor", title))
			return
		}
		if count, exists := anchorCounts[anchor]; exists {
			anchorCounts[anchor] = count + 1
			anchor = anchor + "-" + strconv.Itoa(count)
		} else {
			anchorCounts[anchor] = 1
		}

		permalink := source.URL + "#" + anchor
		section := c2padocs.Section{
			ID:        c2padocs.SectionID(permalink),
			Number:    c2padocs.SectionNumber(title),
			Title:     title,
			Anchor:    anchor,
			Permalink: permalink,
			Text:      text,
			SourceID:  source.ID,
			SourceURL: source.URL,
			Position:  len(result.Sections),
		}
		if err := section.Validate(); err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("heading %q: %s", title, c2padocs.ErrorMessage(err)))
			return
		}

		result.Sections = append(result.Sections, section)
	})

	return result, nil
}

// collectBody gathers the text of the siblings following a heading node up
// to the next heading of any indexed level.
func collectBody(heading *html.Node) string {
	var parts []string
	for node := heading.NextSibling; node != nil; node = node.NextSibling {
		if isHeading(node) {
			break
		}
		if text := collectText(node); text != "" {
			parts = append(parts, text)
		}
	}
	return c2padocs.NormalizeText(strings.Join(parts, " "))
}

// collectText walks a node tree in one recursive pass, keeping text and
// skipping boilerplate element kinds.
func collectText(node *html.Node) string {
	switch node.Type {
	case html.TextNode:
		return node.Data
	case html.ElementNode:
		switch node.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Nav, atom.Aside, atom.Footer:
			return ""
		}
	case html.CommentNode, html.DoctypeNode:
		return ""
	}

	var parts []string
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if text := collectText(child); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// isHeading reports whether the node is an h2/h3/h4 element.
func isHeading(node *html.Node) bool {
	if node.Type != html.ElementNode {
		return false
	}
	switch node.DataAtom {
	case atom.H2, atom.H3, atom.H4:
		return true
	}
	return false
}

// capRunes truncates s to at most n runes without splitting a character.
func capRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
