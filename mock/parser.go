package mock

import "github.com/akowalczyk/c2padocs"

var _ c2padocs.SectionParser = (*SectionParser)(nil)

// SectionParser is a mock implementation of c2padocs.SectionParser.
type SectionParser struct {
	ParseSectionsFn func(rawHTML string, source c2padocs.Source) (*c2padocs.ParseResult, error)
}

func (p *SectionParser) ParseSections(rawHTML string, source c2padocs.Source) (*c2padocs.ParseResult, error) {
	return p.ParseSectionsFn(rawHTML, source)
}
