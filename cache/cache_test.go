package cache_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akowalczyk/c2padocs/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	t.Parallel()

	c := cache.New(4, 1<<20, time.Minute)
	c.Set("a", cache.Entry{Body: []byte("alpha")})

	entry, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("alpha"), entry.Body)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := cache.New(3, 1<<20, time.Minute)
	c.Set("a", cache.Entry{Body: []byte("1")})
	c.Set("b", cache.Entry{Body: []byte("2")})
	c.Set("c", cache.Entry{Body: []byte("3")})

	// Touch "a" so "b" becomes the least recently used.
	_, ok := c.Get("a")
	require.True(t, ok)

	// Capacity+1th insert evicts exactly the least recently used entry.
	c.Set("d", cache.Entry{Body: []byte("4")})

	_, ok = c.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	for _, key := range []string{"a", "c", "d"} {
		_, ok := c.Get(key)
		assert.True(t, ok, "entry %q should survive", key)
	}
	assert.Equal(t, 3, c.Len())
}

func TestCache_EvictsRepeatedlyUntilUnderByteCapacity(t *testing.T) {
	t.Parallel()

	c := cache.New(10, 10, time.Minute)
	c.Set("a", cache.Entry{Body: []byte("aaaa")}) // 4 bytes
	c.Set("b", cache.Entry{Body: []byte("bbbb")}) // 4 bytes

	// 8 bytes would exceed the cap; both existing entries must go.
	c.Set("c", cache.Entry{Body: []byte("cccccccc")})

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.False(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, int64(8), c.Bytes())
}

func TestCache_OversizedEntryIsNotCached(t *testing.T) {
	t.Parallel()

	c := cache.New(10, 4, time.Minute)
	c.Set("huge", cache.Entry{Body: []byte("too big to fit")})

	_, ok := c.Get("huge")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestCache_ExpiredEntryIsNeverReturned(t *testing.T) {
	t.Parallel()

	now := time.Now()
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	c := cache.New(4, 1<<20, time.Minute, cache.WithNow(clock))
	c.Set("a", cache.Entry{Body: []byte("alpha")})

	_, ok := c.Get("a")
	require.True(t, ok)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	_, ok = c.Get("a")
	assert.False(t, ok, "expired entry must miss")
	assert.Zero(t, c.Len(), "expired entry is removed on access")
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	c := cache.New(4, 1<<20, time.Minute)
	c.Set("a", cache.Entry{Body: []byte("alpha")})
	c.Invalidate("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Bytes())
}

func TestCache_GetOrLoad_SingleFlight(t *testing.T) {
	t.Parallel()

	c := cache.New(4, 1<<20, time.Minute)

	var calls atomic.Int64
	release := make(chan struct{})
	load := func(ctx context.Context) (cache.Entry, error) {
		calls.Add(1)
		<-release
		return cache.Entry{Body: []byte("shared")}, nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([][]byte, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, err := c.GetOrLoad(context.Background(), "key", load)
			results[i], errs[i] = entry.Body, err
		}(i)
	}

	// Let the goroutines pile up on the in-flight load before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load(), "concurrent misses must collapse into one load")
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []byte("shared"), results[i])
	}
}

func TestCache_GetOrLoad_ErrorNotCached(t *testing.T) {
	t.Parallel()

	c := cache.New(4, 1<<20, time.Minute)

	var calls atomic.Int64
	failing := func(ctx context.Context) (cache.Entry, error) {
		calls.Add(1)
		return cache.Entry{}, fmt.Errorf("load failed")
	}

	_, err := c.GetOrLoad(context.Background(), "key", failing)
	require.Error(t, err)

	_, err = c.GetOrLoad(context.Background(), "key", failing)
	require.Error(t, err)

	assert.Equal(t, int64(2), calls.Load(), "failed loads must not populate the cache")
}

func TestCache_GetOrLoad_ServesCachedEntry(t *testing.T) {
	t.Parallel()

	c := cache.New(4, 1<<20, time.Minute)
	c.Set("key", cache.Entry{Body: []byte("cached")})

	entry, err := c.GetOrLoad(context.Background(), "key", func(ctx context.Context) (cache.Entry, error) {
		t.Fatal("loader must not run on a live hit")
		return cache.Entry{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), entry.Body)
}
