// Package cache implements the two-generation memoization cache used by the
// merge pipeline. It approximates LRU with O(1) operations: entries are written
// into a current generation, and when that generation exceeds capacity it is
// rotated wholesale into the previous generation instead of evicting per entry.
package cache

import "sync"

// Cache is a bounded key/value memo. The zero value is not usable; construct
// with New. All methods are safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	size     int
	current  map[K]V
	previous map[K]V
}

// New returns a cache holding up to roughly 2*capacity entries across both
// generations. A capacity below 1 disables caching entirely: Get always misses
// and Set is a no-op.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	c := &Cache[K, V]{capacity: capacity}
	if capacity >= 1 {
		c.current = make(map[K]V, capacity)
		c.previous = make(map[K]V)
	}
	return c
}

// Get looks up key in the current generation first, then the previous one. A
// previous-generation hit is promoted into the current generation (the
// previous copy stays in place; it dies at the next rotation).
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	if c.capacity < 1 {
		return zero, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.current[key]; ok {
		return v, true
	}
	if v, ok := c.previous[key]; ok {
		c.store(key, v)
		return v, true
	}
	return zero, false
}

// Set writes key into the current generation, rotating generations when the
// current one grows past capacity.
func (c *Cache[K, V]) Set(key K, value V) {
	if c.capacity < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// store must be called with c.mu held. Overwriting an existing current-
// generation key does not grow the size counter; rotation only triggers on
// genuinely new insertions.
func (c *Cache[K, V]) store(key K, value V) {
	if _, ok := c.current[key]; ok {
		c.current[key] = value
		return
	}
	c.current[key] = value
	c.size++
	if c.size > c.capacity {
		c.previous = c.current
		c.current = make(map[K]V, c.capacity)
		c.size = 0
	}
}
