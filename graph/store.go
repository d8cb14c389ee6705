package graph

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/graphfilter/errors"
)

// document is the on-disk graph shape: two lists of raw attribute maps.
type document struct {
	Nodes []map[string]any `json:"nodes" yaml:"nodes"`
	Edges []map[string]any `json:"edges" yaml:"edges"`
}

// Store is an in-memory View implementation. It is immutable after
// construction; rebuild it (and any adjacency index) when the graph
// changes.
type Store struct {
	nodes []Node
	edges []Edge
}

// NewStore builds a Store from already-normalized nodes and edges.
func NewStore(nodes []Node, edges []Edge) *Store {
	return &Store{nodes: nodes, edges: edges}
}

// Nodes returns all nodes in the graph
func (s *Store) Nodes() []Node { return s.nodes }

// Edges returns all edges in the graph
func (s *Store) Edges() []Edge { return s.edges }

// LoadFile reads a graph document from a JSON or YAML file, chosen by
// extension (.json, .yaml, .yml). All endpoint alias normalization
// happens here.
func LoadFile(path string, logger *slog.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Store", "LoadFile", "reading graph document")
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, errors.WrapInvalid(err, "Store", "LoadFile", "decoding graph document")
	}

	store, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("graph loaded",
			"path", path,
			"nodes", len(store.nodes),
			"edges", len(store.edges))
	}
	return store, nil
}

func fromDocument(doc document) (*Store, error) {
	nodes := make([]Node, 0, len(doc.Nodes))
	for _, raw := range doc.Nodes {
		nodes = append(nodes, NodeFromMap(raw))
	}

	edges := make([]Edge, 0, len(doc.Edges))
	for _, raw := range doc.Edges {
		edge, err := EdgeFromMap(raw)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}

	return NewStore(nodes, edges), nil
}
