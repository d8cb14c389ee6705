package filter

import "github.com/c360/graphfilter/graph"

// InferEdges finds edges implied to match by a node-level filter: for
// every matched node, each incident edge is tested against the same
// node-scoped condition groups using the edge's own denormalized
// attributes. The returned set is deduplicated; an edge reachable from
// both endpoints appears once.
//
// Scalar columns must each pass their fold, exactly as in direct
// matching. Multi-valued columns differ: instead of accepting any
// matching position per column independently, the matching position sets
// are intersected across ALL multi-valued columns, and the edge is
// included only when some single position satisfies every column's
// condition group simultaneously. Edges here carry positionally aligned
// copies of relationship attributes, so the shared index expresses "the
// same contextual instance", not "any instance anywhere".
func (e *Engine) InferEdges(matchedNodes IDSet, nodeGroups Groups, adj *graph.Adjacency) IDSet {
	matched := IDSet{}
	if len(nodeGroups) == 0 {
		return matched
	}

	for nodeID := range matchedNodes {
		for _, edge := range adj.IncidentTo(nodeID) {
			if matched.Has(edge.ID) {
				continue
			}
			if e.edgeCorrelates(edge.Attributes, nodeGroups) {
				matched.Add(edge.ID)
			}
		}
	}
	return matched
}

// edgeCorrelates applies node-scoped groups to an edge's attributes with
// positional correlation across multi-valued columns.
func (e *Engine) edgeCorrelates(attrs map[string]any, groups Groups) bool {
	var shared indexSet
	sawMulti := false

	for column, conditions := range groups {
		value, ok := attrs[column]
		if !ok || value == nil {
			return false
		}

		if items, multi := graph.MultiValues(value); multi {
			positions := matchedIndices(items, conditions)
			if sawMulti {
				shared = shared.intersect(positions)
			} else {
				shared = positions
				sawMulti = true
			}
			if len(shared) == 0 {
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
