package graph

import (
	"github.com/google/uuid"

	"github.com/c360/graphfilter/errors"
)

// Endpoint field aliases accepted at ingestion. Resolution happens here
// once; nothing downstream ever sees an alias.
var (
	sourceAliases = []string{"s", "source", "source_id", "sourceId"}
	targetAliases = []string{"t", "target", "target_id", "targetId"}
	idAliases     = []string{"id", "ID"}
)

// NodeFromMap builds a Node from a raw document map. The id field is
// lifted out; every remaining field becomes an attribute.
func NodeFromMap(raw map[string]any) Node {
	node := Node{Attributes: make(map[string]any, len(raw))}
	for key, value := range raw {
		if node.ID == "" && isAlias(key, idAliases) {
			node.ID = ScalarString(value)
			continue
		}
		node.Attributes[key] = value
	}
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	return node
}

// EdgeFromMap builds an Edge from a raw document map, resolving endpoint
// aliases to the canonical SourceID/TargetID pair. Edges without an id
// are assigned a generated UUID. Returns ErrMissingEndpoint when either
// endpoint cannot be resolved.
func EdgeFromMap(raw map[string]any) (Edge, error) {
	edge := Edge{Attributes: make(map[string]any, len(raw))}
	for key, value := range raw {
		switch {
		case edge.ID == "" && isAlias(key, idAliases):
			edge.ID = ScalarString(value)
		case edge.SourceID == "" && isAlias(key, sourceAliases):
			edge.SourceID = ScalarString(value)
		case edge.TargetID == "" && isAlias(key, targetAliases):
			edge.TargetID = ScalarString(value)
		default:
			edge.Attributes[key] = value
		}
	}

	if edge.SourceID == "" || edge.TargetID == "" {
		return Edge{}, errors.WrapInvalid(errors.ErrMissingEndpoint, "graph", "EdgeFromMap", "endpoint resolution")
	}
	if edge.ID == "" {
		edge.ID = uuid.NewString()
	}
	return edge, nil
}

func isAlias(key string, aliases []string) bool {
	for _, alias := range aliases {
		if key == alias {
			return true
		}
	}
	return false
}
