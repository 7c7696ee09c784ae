// Package cache provides an in-memory LRU cache for fetched responses with
// per-entry TTL, a byte-size cap, and single-flight loading so concurrent
// misses for one key trigger exactly one load.
package cache

import (
	"container/list"
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entry is one cached response: the raw body plus the response headers.
type Entry struct {
	Body   []byte
	Header http.Header
}

func (e Entry) size() int64 {
	return int64(len(e.Body))
}

type item struct {
	key       string
	entry     Entry
	expiresAt time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// Cache is a TTL-bounded LRU cache. Entries are evicted strictly in
// least-recently-used order once either the entry count or the total byte
// size exceeds capacity, and are never returned past their expiry.
type Cache struct {
	capacity int
	maxBytes int64
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List // front is most recently used
	bytes int64

	group singleflight.Group
}

// New creates a Cache holding at most capacity entries and maxBytes of body
// data, each entry living for ttl after insertion.
func New(capacity int, maxBytes int64, ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		capacity: capacity,
		maxBytes: maxBytes,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the live entry for key, marking it as most recently used.
// Expired entries are removed and reported as misses.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return Entry{}, false
	}

	it := el.Value.(*item)
	if c.now().After(it.expiresAt) {
		c.removeLocked(el)
		return Entry{}, false
	}

	c.order.MoveToFront(el)
	return it.entry, true
}

// Set inserts an entry under key, evicting least-recently-used entries until
// both capacity limits hold. Entries larger than the byte capacity are not
// cached at all.
func (c *Cache) Set(key string, entry Entry) {
	if entry.size() > c.maxBytes {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeLocked(el)
	}

	it := &item{key: key, entry: entry, expiresAt: c.now().Add(c.ttl)}
	c.items[key] = c.order.PushFront(it)
	c.bytes += entry.size()

	for (c.order.Len() > c.capacity || c.bytes > c.maxBytes) && c.order.Len() > 0 {
		c.removeLocked(c.order.Back())
	}
}

// Invalidate removes the entry for key, if present.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeLocked(el)
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Bytes returns the total size of cached bodies.
func (c *Cache) Bytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// GetOrLoad returns the live entry for key or invokes load to produce it.
// Concurrent callers for one absent key collapse into a single load; late
// joiners wait for and share its outcome. Successful loads are cached,
// failed ones are not.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (Entry, error)) (Entry, error) {
	if entry, ok := c.Get(key); ok {
		return entry, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A joiner may arrive just after the winner stored the entry.
		if entry, ok := c.Get(key); ok {
			return entry, nil
		}
		entry, err := load(ctx)
		if err != nil {
			return Entry{}, err
		}
		c.Set(key, entry)
		return entry, nil
	})
	if err != nil {
		return Entry{}, err
	}
	return v.(Entry), nil
}

// removeLocked unlinks an element; callers must hold the lock.
func (c *Cache) removeLocked(el *list.Element) {
	it := el.Value.(*item)
	c.order.Remove(el)
	delete(c.items, it.key)
	c.bytes -= it.entry.size()
}
