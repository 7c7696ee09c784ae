package c2padocs

import (
	"fmt"
	"strings"
)

// FormatResults renders search results as a markdown list with section
// numbers, permalinks, and snippets.
func FormatResults(query string, results []SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No matches found for %q.", query)
	}

	var sb strings.Builder
	sb.WriteString("### Spec matches\n")
	for _, r := range results {
		label := r.Section.Number
		if label == "" {
			label = r.Section.Anchor
		}
		fmt.Fprintf(&sb, "- **%s** %s — %s\n", label, r.Section.Title, r.Section.Permalink)
		if r.Snippet != "" {
			fmt.Fprintf(&sb, "\n  %s\n", r.Snippet)
		}
	}
	return sb.String()
}

// FormatSections renders a section listing, one line per section.
func FormatSections(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}

	lines := make([]string, 0, len(sections))
	for _, s := range sections {
		label := s.Number
		if label == "" {
			label = s.Anchor
		}
		lines = append(lines, fmt.Sprintf("- %s %s - %s", label, s.Title, s.Permalink))
	}
	return strings.Join(lines, "\n")
}
