package cache

import (
	"container/list"
	"sync"
)

// entry pairs a key with its cached value inside the eviction list.
type entry[V any] struct {
	key   string
	value V
}

// LRU is a thread-safe least-recently-used cache. Eviction happens on
// insert once maxSize is exceeded. Statistics are always collected;
// observability is not optional.
type LRU[V any] struct {
	mu      sync.Mutex
	maxSize int
	items   map[string]*list.Element
	order   *list.List // front = most recently used
	stats   *Statistics
}

// NewLRU creates an LRU cache holding at most maxSize entries. A
// non-positive size yields a cache that stores nothing but still counts
// misses, so callers can disable caching without branching.
func NewLRU[V any](maxSize int) *LRU[V] {
	return &LRU[V]{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		order:   list.New(),
		stats:   NewStatistics(),
	}
}

// Get retrieves a value and marks it recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.items[key]
	if !ok {
		c.stats.Miss()
		var zero V
		return zero, false
	}
	c.order.MoveToFront(element)
	c.stats.Hit()
	return element.Value.(*entry[V]).value, true
}

// Set stores a value, evicting the least recently used entry on overflow.
func (c *LRU[V]) Set(key string, value V) {
	if c.maxSize <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.items[key]; ok {
		element.Value.(*entry[V]).value = value
		c.order.MoveToFront(element)
		c.stats.Set()
		return
	}

	c.items[key] = c.order.PushFront(&entry[V]{key: key, value: value})
	c.stats.Set()

	if c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry[V]).key)
			c.stats.Eviction()
		}
	}
}

// Clear drops every entry. Call on graph mutation.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the current entry count.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns the cache statistics tracker.
func (c *LRU[V]) Stats() *Statistics {
	return c.stats
}
