// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

// Cache is a least-recently-used cache with a soft entry limit.
//
// Cache is NOT safe for concurrent use.
type Cache[K comparable, V any] struct {
	entries map[K]*lruNode[K, V]
	order   lruList[K, V]
	limit   int

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache holding at most limit entries.
// A limit of 0 or less means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*lruNode[K, V]),
		limit:   limit,
	}
}

// Get returns the cached value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(node)
	return node.value, true
}

// Put stores value under key, replacing any previous value.
// When the cache grows past its limit the least recently used entry is
// evicted.
func (c *Cache[K, V]) Put(key K, value V) {
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.order.moveToFront(node)
		return
	}

	node := &lruNode[K, V]{key: key, value: value}
	c.entries[key] = node
	c.order.pushFront(node)

	for c.limit > 0 && c.order.len > c.limit {
		oldest := c.order.removeOldest()
		delete(c.entries, oldest.key)
		c.evictions++
	}
}

// GetOrCreate returns the cached value for key, calling create and storing
// its result on a miss.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if value, ok := c.Get(key); ok {
		return value
	}
	value := create()
	c.Put(key, value)
	return value
}

// Delete removes key from the cache.
// Returns true if the entry was present.
func (c *Cache[K, V]) Delete(key K) bool {
	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.unlink(node)
	delete(c.entries, key)
	return true
}

// Clear drops every entry. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*lruNode[K, V])
	c.order = lruList[K, V]{}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.order.len
}

// Limit returns the soft entry limit (0 means unlimited).
func (c *Cache[K, V]) Limit() int {
	return c.limit
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	stats := Stats{
		Len:       c.order.len,
		Limit:     c.limit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Limit is the soft entry limit.
	Limit int
	// Hits is the number of lookups served from the cache.
	Hits uint64
	// Misses is the number of lookups that found nothing.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was looked up.
	HitRate float64
	// Evictions is the number of entries dropped to honor the limit.
	Evictions uint64
}
