package c2padocs

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Section represents one anchor-addressable span of a specification
// document. Sections are built wholesale when a source document is indexed
// and are never mutated in place.
type Section struct {
	// ID is stable for a given document version: a hash of the permalink.
	ID string `json:"id"`

	// Number is the leading section number from the title ("3.4"), if any.
	Number string `json:"number"`

	Title  string `json:"title"`
	Anchor string `json:"anchor"`

	// Permalink is the source URL plus the anchor fragment.
	Permalink string `json:"permalink"`

	// Text is the whitespace-normalized body under the heading.
	Text string `json:"text"`

	// SourceID identifies the indexed document this section came from.
	SourceID  string `json:"sourceId"`
	SourceURL string `json:"sourceUrl"`

	// Position is the section's order of appearance in the document.
	Position int `json:"position"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "section title required")
	}
	if s.Anchor == "" {
		return Errorf(EINVALID, "section anchor required")
	}
	if s.SourceID == "" {
		return Errorf(EINVALID, "section source ID required")
	}
	return nil
}

// SectionID derives a stable section identifier from a permalink.
func SectionID(permalink string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(permalink))
}

var sectionNumberRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)`)

// SectionNumber extracts a leading dotted section number from a heading
// title, e.g. "3.4 Manifests" yields "3.4". Returns "" when absent.
func SectionNumber(title string) string {
	return sectionNumberRe.FindString(strings.TrimSpace(title))
}

// GenerateAnchor creates a URL-safe anchor from a heading title.
// Converts to lowercase, replaces space runs with hyphens, drops special
// characters.
func GenerateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '.' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText collapses all whitespace runs to single spaces and trims
// the result.
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
