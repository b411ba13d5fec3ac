// Package cache provides a concurrent-safe bounded LRU cache used to
// serve repeated match requests without reprocessing.
package cache

import (
	"sync"
	"sync/atomic"
)

// LRU is a fixed-capacity key/value cache with least-recently-used
// eviction. All methods are safe for concurrent use; the cache is shared
// process-wide state under the HTTP server.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]V
	order    []K // LRU order: front=oldest, back=newest
	capacity int
	hits     atomic.Int64
	misses   atomic.Int64
}

// Stats contains cache performance statistics.
type Stats struct {
	Entries  int     `json:"entries"`
	Capacity int     `json:"capacity"`
	Hits     int64   `json:"hits"`
	Misses   int64   `json:"misses"`
	HitRate  float64 `json:"hit_rate"`
}

// New creates an LRU with the given capacity. Capacity values below 1 are
// clamped to 1.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		entries:  make(map[K]V, capacity),
		capacity: capacity,
	}
}

// Get retrieves a value. A hit refreshes the entry's recency, so a
// recently-read key is the last to be evicted.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	val, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	c.removeFromOrder(key)
	c.order = append(c.order, key)
	c.hits.Add(1)
	return val, true
}

// Set stores a value, evicting the least-recently-used entry if the cache
// is at capacity. New and updated entries become most-recently-used.
func (c *LRU[K, V]) Set(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = val
		c.removeFromOrder(key)
		c.order = append(c.order, key)
		return
	}

	for len(c.entries) >= c.capacity && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = val
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	entries := len(c.entries)
	c.mu.Unlock()

	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Entries:  entries,
		Capacity: c.capacity,
		Hits:     hits,
		Misses:   misses,
		HitRate:  hitRate,
	}
}

// removeFromOrder removes key from the order slice. Caller holds mu.
func (c *LRU[K, V]) removeFromOrder(key K) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
