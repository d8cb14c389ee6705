// Package graphfilter provides a filter evaluation engine for
// attribute-bearing graphs: given nodes and edges carrying scalar or
// multi-valued attributes and a boolean filter expression over attribute
// columns, it computes the matching node and edge id sets and infers the
// edges a node-level filter implies.
//
// # Layout
//
//	graph/     entity model, ingestion normalization, adjacency index
//	filter/    comparator, condition folds, engine, inference, parser
//	config/    run configuration (JSON/YAML)
//	errors/    classified error handling
//	pkg/cache/ LRU result cache used by filter sessions
//	cmd/       the graphfilter CLI
//
// # Evaluation Semantics
//
// Conditions sharing a column fold strictly left to right; the logical
// operator attached to a condition governs how the NEXT condition's
// result merges into the accumulator, defaulting to OR. There is no
// operator precedence. Comparison is type-aware: numeric when both sides
// parse as finite numbers, lexicographic for zero-padded ISO dates, and
// case-insensitive string comparison otherwise. Missing attributes fail
// closed.
//
// Edges incident to matched nodes are additionally tested against the
// node-scoped conditions with positional correlation: one shared position
// must satisfy every multi-valued column's condition group at once.
package graphfilter
