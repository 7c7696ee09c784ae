// Package spec implements the specification section index and ranked
// search. Documents are fetched through the shared fetch client, segmented
// by a SectionParser, and rebuilt wholesale whenever the fetched bytes
// change; readers never observe a partially rebuilt index.
package spec

import (
	"context"
	"log/slog"
	"sync"

	"github.com/akowalczyk/c2padocs"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// Ensure Service implements c2padocs.SpecService at compile time.
var _ c2padocs.SpecService = (*Service)(nil)

// index is one source's immutable section list plus the fingerprint of the
// document bytes it was built from.
type index struct {
	fingerprint uint64
	sections    []c2padocs.Section
}

// Service indexes registered specification sources and serves searches.
type Service struct {
	fetcher c2padocs.Fetcher
	parser  c2padocs.SectionParser
	logger  *slog.Logger

	snippetMax   int
	defaultLimit int

	mu      sync.RWMutex
	sources map[string]c2padocs.Source
	order   []string // source IDs in registration order
	indexes map[string]*index

	group singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithSources replaces the default source set.
func WithSources(sources ...c2padocs.Source) Option {
	return func(s *Service) {
		s.sources = make(map[string]c2padocs.Source, len(sources))
		s.order = s.order[:0]
		for _, src := range sources {
			s.sources[src.ID] = src
			s.order = append(s.order, src.ID)
		}
	}
}

// WithLogger sets the logger for rebuild and parse-skip events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service indexing the default sources.
func NewService(cfg c2padocs.Config, fetcher c2padocs.Fetcher, parser c2padocs.SectionParser, opts ...Option) *Service {
	s := &Service{
		fetcher:      fetcher,
		parser:       parser,
		logger:       slog.New(slog.DiscardHandler),
		snippetMax:   cfg.SnippetMaxLen,
		defaultLimit: cfg.MaxMatches,
		sources:      make(map[string]c2padocs.Source),
		indexes:      make(map[string]*index),
	}
	WithSources(c2padocs.DefaultSources()...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureIndexed builds the section index for sourceID if it is not already
// current. The fetch is cache-served while the underlying entry is live, so
// a rebuild only happens after cache expiry or invalidation delivers
// different bytes. Concurrent calls for one source collapse into a single
// rebuild.
func (s *Service) EnsureIndexed(ctx context.Context, sourceID string) error {
	s.mu.RLock()
	src, ok := s.sources[sourceID]
	s.mu.RUnlock()
	if !ok {
		return c2padocs.Errorf(c2padocs.ENOTFOUND, "source %q not found", sourceID)
	}

	_, err, _ := s.group.Do(sourceID, func() (any, error) {
		body, err := s.fetcher.Fetch(ctx, src.URL, map[string]string{"Accept": "text/html"})
		if err != nil {
			return nil, err
		}

		fingerprint := xxhash.Sum64(body)

		s.mu.RLock()
		current := s.indexes[sourceID]
		s.mu.RUnlock()
		if current != nil && current.fingerprint == fingerprint {
			return nil, nil
		}

		result, err := s.parser.ParseSections(string(body), src)
		if err != nil {
			return nil, err
		}
		for _, reason := range result.Skipped {
			s.logger.Warn("section skipped during indexing",
				"source", sourceID,
				"reason", reason,
			)
		}

		// Atomic swap: the old section list stays visible until the new one
		// fully replaces it.
		s.mu.Lock()
		s.indexes[sourceID] = &index{fingerprint: fingerprint, sections: result.Sections}
		s.mu.Unlock()

		s.logger.Info("indexed source",
			"source", sourceID,
			"sections", len(result.Sections),
			"skipped", len(result.Skipped),
		)
		return nil, nil
	})
	return err
}

// Sections returns the indexed sections for a source in document order,
// indexing it first if needed.
func (s *Service) Sections(ctx context.Context, sourceID string) ([]c2padocs.Section, error) {
	if err := s.EnsureIndexed(ctx, sourceID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexes[sourceID]
	if idx == nil {
		return nil, nil
	}
	sections := make([]c2padocs.Section, len(idx.sections))
	copy(sections, idx.sections)
	return sections, nil
}

// Invalidate drops the index for a source. The next EnsureIndexed rebuilds
// from whatever the fetch layer returns.
func (s *Service) Invalidate(sourceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.indexes, sourceID)
}

// snapshot returns all indexed sections in source registration order, each
// source's sections in document order.
func (s *Service) snapshot() []c2padocs.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []c2padocs.Section
	for _, id := range s.order {
		if idx := s.indexes[id]; idx != nil {
			all = append(all, idx.sections...)
		}
	}
	return all
}
