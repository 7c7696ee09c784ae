package c2padocs

import "context"

// Fetcher retrieves raw response bodies from allowlisted URLs.
// Implementations are expected to cache, retry transient failures, and
// redact the bearer credential from any error they surface.
type Fetcher interface {
	// Fetch returns the body at url. Optional request headers (typically
	// Accept) may be supplied; they participate in the cache key.
	// The context bounds the whole operation including backoff waits.
	Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
