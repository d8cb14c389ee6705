package graph

// Node is a graph node with an arbitrary attribute map.
type Node struct {
	ID         string         `json:"id" yaml:"id"`
	Attributes map[string]any `json:"attributes" yaml:"attributes"`
}

// Edge is a directed graph edge. SourceID and TargetID are canonical;
// endpoint alias resolution happens at ingestion, never downstream.
type Edge struct {
	ID         string         `json:"id" yaml:"id"`
	SourceID   string         `json:"source_id" yaml:"source_id"`
	TargetID   string         `json:"target_id" yaml:"target_id"`
	Attributes map[string]any `json:"attributes" yaml:"attributes"`
}

// View is the read-only graph surface the filter engine evaluates against.
// Implementations must return stable snapshots for the duration of one
// evaluation call; the engine never mutates what it is handed.
type View interface {
	// Nodes returns all nodes in the graph
	Nodes() []Node

	// Edges returns all edges in the graph
	Edges() []Edge
}
