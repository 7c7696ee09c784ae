package mock

import "github.com/akowalczyk/c2padocs"

var _ c2padocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of c2padocs.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*c2padocs.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string) (*c2padocs.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}
