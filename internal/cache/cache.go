// Package cache stores precomputed recommendation lists per user. Entries
// are written whole and expire after a TTL; there is no explicit
// invalidation.
package cache

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Cache holds ranked listing IDs keyed by user ID.
type Cache interface {
	// Get returns the cached IDs and true on a hit. An absent or expired
	// entry is a miss, not an error.
	Get(ctx context.Context, userID string) ([]string, bool, error)
	// Set replaces the user's entry.
	Set(ctx context.Context, userID string, ids []string, ttl time.Duration) error
}

type memoryEntry struct {
	ids       []string
	expiresAt time.Time
}

// MemoryCache is an in-process Cache for single-node deployments and tests.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	nowFunc func() time.Time
}

// MemoryOption configures a MemoryCache.
type MemoryOption func(*MemoryCache)

// WithNowFunc overrides the clock used for expiry.
func WithNowFunc(fn func() time.Time) MemoryOption {
	return func(c *MemoryCache) {
		c.nowFunc = fn
	}
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]memoryEntry),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, userID string) ([]string, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[userID]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !c.nowFunc().Before(e.expiresAt) {
		c.mu.Lock()
		if cur, ok := c.entries[userID]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, userID)
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	return slices.Clone(e.ids), true, nil
}

// Set implements Cache. A non-positive ttl removes the entry.
func (c *MemoryCache) Set(_ context.Context, userID string, ids []string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl <= 0 {
		delete(c.entries, userID)
		return nil
	}

	c.entries[userID] = memoryEntry{
		ids:       slices.Clone(ids),
		expiresAt: c.nowFunc().Add(ttl),
	}
	return nil
}
