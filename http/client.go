// Package http provides the HTTP-based implementation of c2padocs.Fetcher:
// a host-allowlisted client that serves from cache, collapses concurrent
// fetches, retries transient failures with exponential backoff and jitter,
// and redacts the bearer credential from every surfaced error.
package http

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akowalczyk/c2padocs"
	"github.com/akowalczyk/c2padocs/cache"
	"github.com/cespare/xxhash/v2"
)

// DefaultUserAgent identifies the client to upstream hosts.
const DefaultUserAgent = "c2padocs/0.1 (+https://github.com/akowalczyk/c2padocs)"

// DefaultHostRPS is the per-host request rate applied between attempts.
const DefaultHostRPS = 4.0

// maxErrorExcerpt bounds how much of an upstream error body is quoted in
// error messages.
const maxErrorExcerpt = 120

// Ensure Client implements c2padocs.Fetcher at compile time.
var _ c2padocs.Fetcher = (*Client)(nil)

// Client retrieves bodies from allowlisted URLs with caching and retry.
type Client struct {
	client    *http.Client
	cache     *cache.Cache
	allowlist *c2padocs.Allowlist
	limiter   *HostLimiter

	token     string
	authScope string

	attempts int
	base     time.Duration
	timeout  time.Duration

	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithHostRPS overrides the per-host request rate.
func WithHostRPS(rps float64) Option {
	return func(c *Client) {
		c.limiter = NewHostLimiter(rps)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a Client from the configuration. The cache is shared
// with any other consumers the caller wires up.
func NewClient(cfg c2padocs.Config, store *cache.Cache, opts ...Option) *Client {
	c := &Client{
		cache:     store,
		allowlist: c2padocs.NewAllowlist(cfg.AllowedHosts...),
		limiter:   NewHostLimiter(DefaultHostRPS),
		token:     cfg.Token,
		authScope: authScope(cfg.Token),
		attempts:  cfg.RetryAttempts,
		base:      cfg.RetryBase,
		timeout:   cfg.RequestTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	return c
}

// Fetch returns the body at rawURL, serving live cache entries without
// network I/O. The allowlist is checked before anything else; a blocked
// host performs no network call and no cache write.
func (c *Client) Fetch(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, c2padocs.Errorf(c2padocs.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	host := u.Hostname()
	if !c.allowlist.Allows(host) {
		return nil, c2padocs.Errorf(c2padocs.EBLOCKED, "host %q is not in the allowlist", host)
	}

	key := c.cacheKey(u, headers)
	entry, err := c.cache.GetOrLoad(ctx, key, func(ctx context.Context) (cache.Entry, error) {
		return c.fetchWithRetry(ctx, rawURL, host, headers)
	})
	if err != nil {
		return nil, c.sanitize(err)
	}
	return entry.Body, nil
}

// Close releases idle connections held by the underlying client.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// cacheKey builds the cache key from the normalized URL, the Accept header,
// and the auth scope, so responses fetched with different credentials or
// content negotiation never alias.
func (c *Client) cacheKey(u *url.URL, headers map[string]string) string {
	norm := *u
	norm.Scheme = strings.ToLower(norm.Scheme)
	norm.Host = strings.ToLower(norm.Host)
	norm.Fragment = ""
	if (norm.Scheme == "https" && strings.HasSuffix(norm.Host, ":443")) ||
		(norm.Scheme == "http" && strings.HasSuffix(norm.Host, ":80")) {
		norm.Host = norm.Hostname()
	}

	accept := ""
	for k, v := range headers {
		if strings.EqualFold(k, "Accept") {
			accept = v
		}
	}

	return norm.String() + "|" + accept + "|" + c.authScope
}

// fetchWithRetry performs network attempts until success, a non-transient
// failure, or attempt exhaustion. Backoff waits are the only suspension
// points; each wait honors context cancellation.
func (c *Client) fetchWithRetry(ctx context.Context, rawURL, host string, headers map[string]string) (cache.Entry, error) {
	var lastErr error

	for attempt := 0; attempt < c.attempts; attempt++ {
		if err := c.limiter.Wait(ctx, host); err != nil {
			return cache.Entry{}, err
		}

		entry, retryAfter, err := c.attempt(ctx, rawURL, headers)
		if err == nil {
			return entry, nil
		}
		lastErr = err

		if !c2padocs.Retryable(err) || attempt == c.attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return cache.Entry{}, ctx.Err()
		case <-time.After(c.backoff(attempt, retryAfter)):
		}
	}

	return cache.Entry{}, lastErr
}

// attempt performs a single request. On failure it classifies the outcome
// and, for rate limiting, reports the upstream Retry-After hint.
func (c *Client) attempt(ctx context.Context, rawURL string, headers map[string]string) (cache.Entry, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return cache.Entry{}, 0, c2padocs.Errorf(c2padocs.EINVALID, "creating request: %v", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9,*/*;q=0.8")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return cache.Entry{}, 0, c2padocs.Errorf(c2padocs.EUNAVAILABLE, "request to %s failed: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return cache.Entry{}, 0, c2padocs.Errorf(c2padocs.EUNAVAILABLE, "reading body from %s: %v", rawURL, err)
		}
		return cache.Entry{Body: body, Header: resp.Header.Clone()}, 0, nil
	}

	excerpt := errorExcerpt(resp.Body)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		hint := parseRetryAfter(resp.Header.Get("Retry-After"))
		msg := fmt.Sprintf("rate limited by %s (HTTP 429)", rawURL)
		if hint > 0 {
			msg += fmt.Sprintf(", retry after %s", hint)
		}
		return cache.Entry{}, hint, c2padocs.Errorf(c2padocs.ERATELIMITED, "%s", msg)
	case resp.StatusCode >= 500:
		return cache.Entry{}, 0, c2padocs.Errorf(c2padocs.EUNAVAILABLE, "HTTP %d for %s: %s", resp.StatusCode, rawURL, excerpt)
	case resp.StatusCode == http.StatusNotFound:
		return cache.Entry{}, 0, c2padocs.Errorf(c2padocs.ENOTFOUND, "HTTP 404 for %s", rawURL)
	default:
		return cache.Entry{}, 0, c2padocs.Errorf(c2padocs.EINVALID, "HTTP %d for %s: %s", resp.StatusCode, rawURL, excerpt)
	}
}

// backoff computes the delay before the next attempt: the upstream
// Retry-After hint when given, otherwise base*2^attempt with +/-50% jitter.
func (c *Client) backoff(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}
	d := c.base << uint(attempt)
	return d/2 + rand.N(d)
}

// sanitize strips the bearer credential from an error before it is
// surfaced, even if the transport echoed it.
func (c *Client) sanitize(err error) error {
	if err == nil || c.token == "" {
		return err
	}
	if !strings.Contains(err.Error(), c.token) {
		return err
	}
	code := c2padocs.ErrorCode(err)
	msg := strings.ReplaceAll(c2padocs.ErrorMessage(err), c.token, "***")
	return c2padocs.Errorf(code, "%s", msg)
}

// authScope derives the cache-key auth dimension from the credential.
// Responses fetched anonymously are never served to authenticated callers
// or vice versa.
func authScope(token string) string {
	if token == "" {
		return "anon"
	}
	return fmt.Sprintf("auth-%016x", xxhash.Sum64String(token))
}

// errorExcerpt reads a short, whitespace-normalized prefix of an error
// response body for diagnostics.
func errorExcerpt(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorExcerpt))
	if err != nil {
		return ""
	}
	return c2padocs.NormalizeText(string(b))
}

// parseRetryAfter handles both delta-seconds and HTTP-date forms.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
