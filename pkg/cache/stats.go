package cache

import "sync/atomic"

// Statistics tracks cache performance counters with atomic updates.
type Statistics struct {
	hits      int64
	misses    int64
	sets      int64
	evictions int64
}

// NewStatistics creates a statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Hit records a cache hit.
func (s *Statistics) Hit() { atomic.AddInt64(&s.hits, 1) }

// Miss records a cache miss.
func (s *Statistics) Miss() { atomic.AddInt64(&s.misses, 1) }

// Set records a store operation.
func (s *Statistics) Set() { atomic.AddInt64(&s.sets, 1) }

// Eviction records an LRU eviction.
func (s *Statistics) Eviction() { atomic.AddInt64(&s.evictions, 1) }

// Hits returns the hit count.
func (s *Statistics) Hits() int64 { return atomic.LoadInt64(&s.hits) }

// Misses returns the miss count.
func (s *Statistics) Misses() int64 { return atomic.LoadInt64(&s.misses) }

// Sets returns the store count.
func (s *Statistics) Sets() int64 { return atomic.LoadInt64(&s.sets) }

// Evictions returns the eviction count.
func (s *Statistics) Evictions() int64 { return atomic.LoadInt64(&s.evictions) }

// HitRate returns hits/(hits+misses), or 0 before any lookup.
func (s *Statistics) HitRate() float64 {
	hits := s.Hits()
	total := hits + s.Misses()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
