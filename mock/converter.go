package mock

import "github.com/akowalczyk/c2padocs"

var _ c2padocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of c2padocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
