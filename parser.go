package c2padocs

// ParseResult holds the output of segmenting a specification document.
type ParseResult struct {
	// Sections in document order, positions already assigned.
	Sections []Section

	// Skipped describes malformed sub-sections that were dropped. A skip is
	// local: it never fails parsing of the rest of the document.
	Skipped []string
}

// SectionParser segments a specification document into addressable sections.
type SectionParser interface {
	ParseSections(rawHTML string, source Source) (*ParseResult, error)
}
