// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a bounded least-recently-used cache.
package cache

import "sync"

// DefaultLimit is the number of entries kept when New is given a limit <= 0.
const DefaultLimit = 1024

// LRU is a generic thread-safe cache holding at most Limit entries.
// When full, the least recently used entry is evicted.
//
// LRU must not be copied after creation (has mutex).
type LRU[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]*node[K, V]
	list  list[K, V]
	limit int

	hits   uint64
	misses uint64
}

// New creates a cache holding at most limit entries.
func New[K comparable, V any](limit int) *LRU[K, V] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &LRU[K, V]{
		items: make(map[K]*node[K, V]),
		limit: limit,
	}
}

// Get returns the value for key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.list.moveToFront(n)
	return n.value, true
}

// Set stores value under key, evicting the oldest entry if the cache is
// full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value or stores the result of create.
// create runs with the cache locked, so it is called at most once per
// missing key.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		c.hits++
		c.list.moveToFront(n)
		return n.value
	}
	c.misses++
	v := create()
	c.set(key, v)
	return v
}

// set stores an entry. Caller must hold c.mu.
func (c *LRU[K, V]) set(key K, value V) {
	if n, ok := c.items[key]; ok {
		n.value = value
		c.list.moveToFront(n)
		return
	}
	for len(c.items) >= c.limit {
		old := c.list.back()
		if old == nil {
			break
		}
		c.list.remove(old)
		delete(c.items, old.key)
	}
	n := &node[K, V]{key: key, value: value}
	c.list.pushFront(n)
	c.items[key] = n
}

// Delete removes key and reports whether it was present.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if ok {
		c.list.remove(n)
		delete(c.items, key)
	}
	return ok
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	c.list = list[K, V]{}
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Limit returns the maximum number of entries.
func (c *LRU[K, V]) Limit() int {
	return c.limit
}

// Stats is a snapshot of cache usage.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns current statistics.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.items), Limit: c.limit, Hits: c.hits, Misses: c.misses}
}
