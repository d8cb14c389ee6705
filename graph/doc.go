// Package graph provides the entity model consumed by the filter engine:
// nodes and edges carrying arbitrary attribute maps, a read-only View
// interface supplied by the graph owner, and a caller-owned adjacency
// index for incident-edge lookups.
//
// # Ingestion Normalization
//
// Graph documents in the wild name edge endpoints inconsistently
// (s/source/source_id/sourceId and the target equivalents). All alias
// resolution happens once at ingestion; the evaluator only ever sees the
// canonical SourceID/TargetID pair. Edges ingested without an id are
// assigned a generated UUID so result sets stay addressable.
//
// # Multi-Valued Attributes
//
// An attribute is multi-valued when it is a native sequence or a string
// joined with "|" or newlines (e.g. "A|B|C"). MultiValues performs the
// coercion; evaluation is position-by-position over the resulting ordered
// list.
package graph
