package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/akowalczyk/c2padocs"
)

// Ensure LoggingSpecService implements c2padocs.SpecService.
var _ c2padocs.SpecService = (*LoggingSpecService)(nil)

// LoggingSpecService wraps a SpecService with query and index logging.
type LoggingSpecService struct {
	next   c2padocs.SpecService
	logger *slog.Logger
}

// NewLoggingSpecService creates a new LoggingSpecService.
func NewLoggingSpecService(next c2padocs.SpecService, logger *slog.Logger) *LoggingSpecService {
	return &LoggingSpecService{next: next, logger: logger}
}

// EnsureIndexed delegates to the wrapped service and logs the operation.
func (s *LoggingSpecService) EnsureIndexed(ctx context.Context, sourceID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("ensure indexed",
			"source", sourceID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnsureIndexed(ctx, sourceID)
}

// Search delegates to the wrapped service and logs the query.
func (s *LoggingSpecService) Search(ctx context.Context, q c2padocs.SearchQuery) (results []c2padocs.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", q.Query,
			"section", q.Section,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, q)
}

// Sections delegates to the wrapped service.
func (s *LoggingSpecService) Sections(ctx context.Context, sourceID string) ([]c2padocs.Section, error) {
	return s.next.Sections(ctx, sourceID)
}

// Invalidate delegates to the wrapped service and logs the drop.
func (s *LoggingSpecService) Invalidate(sourceID string) {
	s.logger.Info("index invalidated", "source", sourceID)
	s.next.Invalidate(sourceID)
}
