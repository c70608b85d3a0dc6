package cache

import (
	"sync"
	"time"

	"github.com/mihirand/fxconvert/pkg/cache"
	"github.com/mihirand/fxconvert/pkg/domain"
)

// MemoryCache implements cache.RateTableCache using in-memory storage.
var _ cache.RateTableCache = (*MemoryCache)(nil)

type MemoryCache struct {
	cache map[string]*cacheEntry
	mu    sync.RWMutex
}

type cacheEntry struct {
	table     *domain.RateTable
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		cache: make(map[string]*cacheEntry),
	}

	// Start cleanup goroutine
	go c.cleanup()

	return c
}

// Get retrieves a rate table from cache. Expired or absent entries return nil.
func (c *MemoryCache) Get(key string) (*domain.RateTable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[key]
	if !exists {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		return nil, nil
	}
	return entry.table, nil
}

// Set stores a rate table in cache with TTL.
func (c *MemoryCache) Set(key string, table *domain.RateTable, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = &cacheEntry{
		table:     table,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a rate table from cache.
func (c *MemoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
	return nil
}

// cleanup removes expired entries from cache.
func (c *MemoryCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.cache {
			if now.After(entry.expiresAt) {
				delete(c.cache, key)
			}
		}
		c.mu.Unlock()
	}
}
