package graph

// Adjacency maps node ids to their incident edges for O(1) lookup during
// edge inference. Building is O(E); the index is owned by the caller, who
// rebuilds it when the graph changes and reuses it across repeated filter
// evaluations.
type Adjacency struct {
	incident map[string][]Edge
}

// BuildAdjacency indexes every edge under both of its endpoints.
func BuildAdjacency(view View) *Adjacency {
	edges := view.Edges()
	incident := make(map[string][]Edge, len(edges))
	for _, edge := range edges {
		incident[edge.SourceID] = append(incident[edge.SourceID], edge)
		if edge.TargetID != edge.SourceID {
			incident[edge.TargetID] = append(incident[edge.TargetID], edge)
		}
	}
	return &Adjacency{incident: incident}
}

// IncidentTo returns the edges touching a node, in insertion order.
// Unknown node ids return nil.
func (a *Adjacency) IncidentTo(nodeID string) []Edge {
	if a == nil {
		return nil
	}
	return a.incident[nodeID]
}
