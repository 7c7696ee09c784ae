package c2padocs

import "time"

// Defaults applied by DefaultConfig.
const (
	DefaultCacheSize      = 64
	DefaultCacheMaxBytes  = 32 << 20
	DefaultCacheTTL       = 15 * time.Minute
	DefaultRetryAttempts  = 4
	DefaultRetryBase      = 500 * time.Millisecond
	DefaultRequestTimeout = 30 * time.Second
	DefaultSnippetMaxLen  = 280
	DefaultMaxMatches     = 5
)

// Config carries the process-wide settings consumed by the fetch client and
// the spec index. It is constructed once at startup and passed explicitly;
// there is no package-level state.
type Config struct {
	// AllowedHosts lists the host patterns a fetch may target.
	AllowedHosts []string

	// Token is an optional bearer credential attached to GitHub API
	// requests. Its value is redacted from all surfaced errors.
	Token string

	// CacheSize caps the number of cached responses.
	CacheSize int

	// CacheMaxBytes caps the total size of cached response bodies.
	CacheMaxBytes int64

	// CacheTTL is how long a cached response stays live.
	CacheTTL time.Duration

	// RetryAttempts is the total number of attempts for transient failures.
	RetryAttempts int

	// RetryBase is the first backoff delay; later delays grow exponentially.
	RetryBase time.Duration

	// RequestTimeout bounds each individual network attempt.
	RequestTimeout time.Duration

	// SnippetMaxLen bounds the length of search result snippets.
	SnippetMaxLen int

	// MaxMatches is the default result limit for searches.
	MaxMatches int
}

// DefaultConfig returns a Config populated with the standard hosts, sources,
// and tuning defaults.
func DefaultConfig() Config {
	return Config{
		AllowedHosts:   DefaultAllowedHosts(),
		CacheSize:      DefaultCacheSize,
		CacheMaxBytes:  DefaultCacheMaxBytes,
		CacheTTL:       DefaultCacheTTL,
		RetryAttempts:  DefaultRetryAttempts,
		RetryBase:      DefaultRetryBase,
		RequestTimeout: DefaultRequestTimeout,
		SnippetMaxLen:  DefaultSnippetMaxLen,
		MaxMatches:     DefaultMaxMatches,
	}
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	if len(c.AllowedHosts) == 0 {
		return Errorf(EINVALID, "at least one allowed host required")
	}
	if c.CacheSize < 1 {
		return Errorf(EINVALID, "cache size must be at least 1, got %d", c.CacheSize)
	}
	if c.CacheMaxBytes < 1 {
		return Errorf(EINVALID, "cache byte capacity must be positive, got %d", c.CacheMaxBytes)
	}
	if c.CacheTTL <= 0 {
		return Errorf(EINVALID, "cache TTL must be positive, got %s", c.CacheTTL)
	}
	if c.RetryAttempts < 1 {
		return Errorf(EINVALID, "retry attempts must be at least 1, got %d", c.RetryAttempts)
	}
	if c.RetryBase <= 0 {
		return Errorf(EINVALID, "retry base delay must be positive, got %s", c.RetryBase)
	}
	if c.RequestTimeout <= 0 {
		return Errorf(EINVALID, "request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.SnippetMaxLen < 1 {
		return Errorf(EINVALID, "snippet length must be positive, got %d", c.SnippetMaxLen)
	}
	if c.MaxMatches < 1 {
		return Errorf(EINVALID, "max matches must be at least 1, got %d", c.MaxMatches)
	}
	return nil
}
