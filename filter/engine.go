package filter

import (
	"sort"
	"time"

	"github.com/c360/graphfilter/graph"
)

// IDSet is a set of entity ids. Uniqueness matters, insertion order does not.
type IDSet map[string]struct{}

// Add inserts an id into the set.
func (s IDSet) Add(id string) { s[id] = struct{}{} }

// Has reports membership.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set containing the members of both sets.
func (s IDSet) Union(other IDSet) IDSet {
	out := make(IDSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the ids in lexicographic order, for deterministic output.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Result carries the matched id sets of one evaluation, with direct and
// inferred edge matches kept separate so callers can distinguish
// provenance.
type Result struct {
	NodeIDs         IDSet `json:"node_ids"`
	DirectEdgeIDs   IDSet `json:"direct_edge_ids"`
	InferredEdgeIDs IDSet `json:"inferred_edge_ids"`
}

// EdgeIDs returns the union of direct and inferred edge matches.
func (r Result) EdgeIDs() IDSet {
	return r.DirectEdgeIDs.Union(r.InferredEdgeIDs)
}

// Engine evaluates filters against graph views. It is stateless across
// calls and safe to reuse; all inputs are treated as immutable during a
// call.
type Engine struct {
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics attaches Prometheus metrics to the engine. A nil Metrics
// is accepted and disables recording.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates a filter engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvaluateEntity tests one attribute map against column-grouped
// conditions. Every group must pass (AND across columns), and a missing
// or nil attribute for any required column fails the entity immediately.
// Scalar attributes take the boolean fold; multi-valued attributes match
// when at least one position satisfies the group. An empty group map
// matches nothing.
func (e *Engine) EvaluateEntity(attrs map[string]any, groups Groups) bool {
	if len(groups) == 0 {
		return false
	}

	for column, conditions := range groups {
		value, ok := attrs[column]
		if !ok || value == nil {
			// Absent data fails closed, never wildcards
			return false
		}

		if items, multi := graph.MultiValues(value); multi {
			if len(matchedIndices(items, conditions)) == 0 {
				return false
			}
			continue
		}

		if !evaluateSequence(graph.ScalarString(value), conditions) {
			return false
		}
	}
	return true
}

// MatchNodes returns the ids of nodes whose attributes satisfy the groups.
func (e *Engine) MatchNodes(nodes []graph.Node, groups Groups) IDSet {
	matched := IDSet{}
	if len(groups) == 0 {
		return matched
	}
	for _, node := range nodes {
		if e.EvaluateEntity(node.Attributes, groups) {
			matched.Add(node.ID)
		}
	}
	return matched
}

// MatchEdgesDirect returns the ids of edges whose own attributes satisfy
// the groups. Direct edge matching is independent of any node.
func (e *Engine) MatchEdgesDirect(edges []graph.Edge, groups Groups) IDSet {
	matched := IDSet{}
	if len(groups) == 0 {
		return matched
	}
	for _, edge := range edges {
		if e.EvaluateEntity(edge.Attributes, groups) {
			matched.Add(edge.ID)
		}
	}
	return matched
}

// Apply runs a full filter against a graph view: direct node matching,
// direct edge matching, then inference of edges implied by the node
// filter. Passing a prebuilt adjacency index avoids the O(E) rebuild;
// nil builds one for this call.
func (e *Engine) Apply(view graph.View, f Filter, adj *graph.Adjacency) Result {
	start := time.Now()

	if adj == nil && len(f.Node) > 0 {
		adj = graph.BuildAdjacency(view)
	}

	result := Result{
		NodeIDs:         e.MatchNodes(view.Nodes(), f.Node),
		DirectEdgeIDs:   e.MatchEdgesDirect(view.Edges(), f.Edge),
		InferredEdgeIDs: IDSet{},
	}
	if len(f.Node) > 0 {
		result.InferredEdgeIDs = e.InferEdges(result.NodeIDs, f.Node, adj)
	}

	e.metrics.observeEvaluation(time.Since(start), result)
	return result
}
