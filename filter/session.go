package filter

import (
	"github.com/c360/graphfilter/graph"
	"github.com/c360/graphfilter/pkg/cache"
)

// Session binds an engine to one graph view for repeated evaluation, the
// typical as-you-type pattern: the adjacency index is built once, and
// results are cached per filter text so re-running an unchanged filter
// costs a cache lookup. The session owner must call Reset whenever the
// graph changes; the engine itself holds no state across calls.
type Session struct {
	engine  *Engine
	view    graph.View
	adj     *graph.Adjacency
	results *cache.LRU[Result]
}

// NewSession creates a session over a view. cacheSize bounds the result
// cache; zero disables result caching while keeping the adjacency reuse.
func NewSession(engine *Engine, view graph.View, cacheSize int) *Session {
	return &Session{
		engine:  engine,
		view:    view,
		adj:     graph.BuildAdjacency(view),
		results: cache.NewLRU[Result](cacheSize),
	}
}

// Evaluate parses and applies a filter expression. Parse failures are
// returned as-is and never cached; identical filter text hits the result
// cache.
func (s *Session) Evaluate(text string) (Result, error) {
	if result, ok := s.results.Get(text); ok {
		return result, nil
	}

	f, err := Parse(text)
	if err != nil {
		s.engine.metrics.ParseFailure()
		return Result{}, err
	}

	result := s.engine.Apply(s.view, f, s.adj)
	s.results.Set(text, result)
	return result, nil
}

// Reset points the session at a (possibly mutated) view, rebuilding the
// adjacency index and dropping every cached result.
func (s *Session) Reset(view graph.View) {
	s.view = view
	s.adj = graph.BuildAdjacency(view)
	s.results.Clear()
}

// CacheStats exposes result-cache counters.
func (s *Session) CacheStats() *cache.Statistics {
	return s.results.Stats()
}
