// Package bloom provides probabilistic seen-URL tracking for sitemap
// discovery. False positives drop an occasional duplicate-looking URL;
// false negatives cannot occur.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs already collected during a discovery walk.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Mark records that a URL has been collected.
func (f *Filter) Mark(url string) {
	f.f.AddString(url)
}

// Seen returns true if the URL was probably collected already.
func (f *Filter) Seen(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of marked URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
