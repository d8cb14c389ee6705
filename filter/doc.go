// Package filter implements the boolean filter evaluation engine for
// attribute-bearing graphs: type-aware leaf comparison, the left-to-right
// logical-operator fold, positional matching over multi-valued attributes,
// direct node/edge matching, and inference of edges implied by node-level
// filters.
//
// # Evaluation Model
//
// A filter is a set of condition groups keyed by attribute column, split
// into node scope and edge scope. Within a group, conditions fold left to
// right: the logical operator attached to condition i governs how
// condition i+1's result merges into the accumulator (defaulting to OR
// when absent). There is no operator precedence and no parentheses.
//
// Across columns the engine ANDs: every group must pass for an entity to
// match, and a missing attribute for any required column fails the entity
// outright.
//
// # Error Model
//
// Parsing filter text fails hard on an incomplete token group; no partial
// results are produced. Comparison never fails: an unrecognized operator
// simply never matches, so one bad condition degrades to "false" inside
// an otherwise working filter.
package filter
