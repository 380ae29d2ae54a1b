package cmd

import (
	"sync"
	"time"

	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/platform"
)

// mcpCacheEntry holds one enumeration snapshot with its timestamp.
type mcpCacheEntry struct {
	windows   []model.Window
	timestamp time.Time
}

// mcpListCache provides a TTL-based cache of window snapshots, keyed by the
// filters that produced them.
type mcpListCache struct {
	mu      sync.Mutex
	entries map[platform.ListOptions]mcpCacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// newMCPListCache creates a new cache. A ttl of 0 disables caching.
func newMCPListCache(ttl time.Duration) *mcpListCache {
	return &mcpListCache{
		entries: make(map[platform.ListOptions]mcpCacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// listWindows returns a cached snapshot if within TTL, otherwise enumerates.
func (c *mcpListCache) listWindows(provider *platform.Provider, opts platform.ListOptions) ([]model.Window, error) {
	if c.ttl == 0 {
		return listWindows(provider, opts)
	}

	c.mu.Lock()
	if entry, ok := c.entries[opts]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		windows := entry.windows
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := listWindows(provider, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[opts] = mcpCacheEntry{windows: windows, timestamp: c.now()}
	c.mu.Unlock()

	return windows, nil
}

// invalidateAll clears the entire cache. Called after a window changes.
func (c *mcpListCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[platform.ListOptions]mcpCacheEntry)
}
