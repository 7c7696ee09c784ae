package spec

import (
	"strings"
	"unicode/utf8"
)

// buildSnippet returns a window of at most max bytes around the earliest
// term match in text. The matched term is never split by the truncation
// boundary; window edges are pulled in to word boundaries where possible.
func buildSnippet(text string, terms []string, max int) string {
	if len(text) <= max {
		return text
	}

	lower := strings.ToLower(text)
	matchStart, matchLen := -1, 0
	for _, term := range terms {
		if i := strings.Index(lower, term); i >= 0 && (matchStart == -1 || i < matchStart) {
			matchStart, matchLen = i, len(term)
		}
	}
	if matchStart < 0 {
		// Title-only match: cite the head of the section body.
		return trimToWord(text[:max], false)
	}
	matchEnd := matchStart + matchLen

	// Center the window on the match, then clamp so the whole term stays
	// inside it.
	start := matchStart + matchLen/2 - max/2
	if start < 0 {
		start = 0
	}
	if start > matchStart {
		start = matchStart
	}
	end := start + max
	if end > len(text) {
		end = len(text)
		if start = end - max; start > matchStart {
			start = matchStart
		}
	}
	if end < matchEnd {
		end = matchEnd
	}

	// Never cut a rune in half; shrink the window rather than grow it so
	// the length bound holds.
	for start < matchStart && !utf8.RuneStart(text[start]) {
		start++
	}
	for end > matchEnd && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}

	snippet := text[start:end]

	// Pull ragged edges in to word boundaries, but never into the match.
	if start > 0 {
		if cut := strings.IndexByte(snippet, ' '); cut >= 0 && start+cut < matchStart {
			snippet = snippet[cut+1:]
			start += cut + 1
		}
	}
	if end < len(text) {
		if cut := strings.LastIndexByte(snippet, ' '); cut >= 0 && start+cut >= matchEnd {
			snippet = snippet[:cut]
		}
	}

	return strings.TrimSpace(snippet)
}

// trimToWord drops a trailing (or leading) partial word from a hard cut.
func trimToWord(s string, leading bool) string {
	if leading {
		if cut := strings.IndexByte(s, ' '); cut >= 0 {
			return strings.TrimSpace(s[cut+1:])
		}
		return s
	}
	if cut := strings.LastIndexByte(s, ' '); cut >= 0 {
		return strings.TrimSpace(s[:cut])
	}
	return s
}
