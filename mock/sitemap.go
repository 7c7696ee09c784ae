package mock

import (
	"context"

	"github.com/akowalczyk/c2padocs"
)

var _ c2padocs.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of c2padocs.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
