// Package mock provides hand-rolled mock implementations of the c2padocs
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/akowalczyk/c2padocs"
)

var _ c2padocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of c2padocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers map[string]string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return f.FetchFn(ctx, url, headers)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
