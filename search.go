package c2padocs

import "context"

// SearchResult is one ranked match against the section index. Results are
// constructed per query and never persisted.
type SearchResult struct {
	Section Section `json:"section"`
	Score   float64 `json:"score"`

	// Snippet is a bounded-length excerpt around the strongest match.
	Snippet string `json:"snippet"`
}

// SearchQuery describes one search over the indexed sections.
type SearchQuery struct {
	// Query holds the search terms.
	Query string

	// Limit caps the number of results. Zero means the configured default.
	Limit int

	// Section optionally boosts sections whose number contains this hint,
	// e.g. "3.4".
	Section string
}

// SpecService indexes specification documents and serves ranked searches
// over their sections.
type SpecService interface {
	// EnsureIndexed builds the section index for the source if it is not
	// already current. Idempotent; concurrent calls for one source collapse
	// into a single rebuild.
	EnsureIndexed(ctx context.Context, sourceID string) error

	// Search returns at most q.Limit results ordered by descending score.
	// An empty query or a query with no matches returns an empty slice.
	Search(ctx context.Context, q SearchQuery) ([]SearchResult, error)

	// Sections returns the indexed sections for a source in document order.
	// Returns ENOTFOUND if the source is not registered.
	Sections(ctx context.Context, sourceID string) ([]Section, error)

	// Invalidate drops the index for a source, forcing the next
	// EnsureIndexed to rebuild from a fresh fetch.
	Invalidate(sourceID string)
}
