package cache

import (
	"fmt"
	"sync"
	"time"
)

// Cache is a concurrency-safe TTL cache over upstream fetch results. The
// clock is injected so tests can advance simulated time instead of sleeping.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	data      any
	fetchedAt time.Time
}

// New creates a Cache with the given TTL. A nil clock defaults to time.Now.
func New(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
	}
}

// Key builds the canonical cache key for a fetch kind and coordinates.
func Key(kind string, lat, lon float64) string {
	return fmt.Sprintf("%s:%.4f:%.4f", kind, lat, lon)
}

// Get returns the cached value if it exists and has not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.data, true
}

// Set stores a value, overwriting any previous entry for the key.
func (c *Cache) Set(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, fetchedAt: c.now()}
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
