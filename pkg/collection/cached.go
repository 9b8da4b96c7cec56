package collection

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachedSource memoises another source for a fixed time.
// Concurrent misses share one call to the underlying source.
type CachedSource struct {
	src Source
	ttl time.Duration
	now func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	items   []any
	expires time.Time
	filled  bool
}

// Cached wraps src. A ttl of zero or less keeps results until Invalidate.
func Cached(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, ttl: ttl, now: time.Now}
}

// All returns a copy of the memoised collection, refreshing it when stale.
// Failed refreshes are not cached. A refresh shared by concurrent callers
// is not cancelled with the caller that started it.
func (c *CachedSource) All(ctx context.Context) ([]any, error) {
	if items, ok := c.fresh(); ok {
		return slices.Clone(items), nil
	}

	shared := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do("all", func() (any, error) {
		if items, ok := c.fresh(); ok {
			return items, nil
		}

		items, err := c.src.All(shared)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.items = items
		c.filled = true
		if c.ttl > 0 {
			c.expires = c.now().Add(c.ttl)
		}
		c.mu.Unlock()

		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]any)), nil
}

// Invalidate drops the memoised collection.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.filled = false
}

func (c *CachedSource) fresh() ([]any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.filled {
		return nil, false
	}
	if c.ttl > 0 && !c.now().Before(c.expires) {
		return nil, false
	}
	return c.items, true
}
