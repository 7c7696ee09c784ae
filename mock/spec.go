package mock

import (
	"context"

	"github.com/akowalczyk/c2padocs"
)

var _ c2padocs.SpecService = (*SpecService)(nil)

// SpecService is a mock implementation of c2padocs.SpecService.
type SpecService struct {
	EnsureIndexedFn func(ctx context.Context, sourceID string) error
	SearchFn        func(ctx context.Context, q c2padocs.SearchQuery) ([]c2padocs.SearchResult, error)
	SectionsFn      func(ctx context.Context, sourceID string) ([]c2padocs.Section, error)
	InvalidateFn    func(sourceID string)
}

func (s *SpecService) EnsureIndexed(ctx context.Context, sourceID string) error {
	return s.EnsureIndexedFn(ctx, sourceID)
}

func (s *SpecService) Search(ctx context.Context, q c2padocs.SearchQuery) ([]c2padocs.SearchResult, error) {
	return s.SearchFn(ctx, q)
}

func (s *SpecService) Sections(ctx context.Context, sourceID string) ([]c2padocs.Section, error) {
	return s.SectionsFn(ctx, sourceID)
}

func (s *SpecService) Invalidate(sourceID string) {
	if s.InvalidateFn != nil {
		s.InvalidateFn(sourceID)
	}
}
