// Package cache provides a small thread-safe LRU cache with always-on
// statistics. graphfilter uses it to reuse evaluation results per filter
// text across repeated evaluations of an unchanged graph; the cache owner
// clears it whenever the graph mutates.
package cache
