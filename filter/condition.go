package filter

import "strings"

// Operator is a leaf comparison operator.
type Operator string

const (
	// OpEqual tests equality ("=")
	OpEqual Operator = "="
	// OpNotEqual tests inequality ("<>")
	OpNotEqual Operator = "<>"
	// OpGreater tests strict greater-than (">")
	OpGreater Operator = ">"
	// OpGreaterOrEqual tests greater-or-equal (">=")
	OpGreaterOrEqual Operator = ">="
	// OpLess tests strict less-than ("<")
	OpLess Operator = "<"
	// OpLessOrEqual tests less-or-equal ("<=")
	OpLessOrEqual Operator = "<="
	// OpContains tests case-insensitive substring containment
	OpContains Operator = "contains"
)

// LogicalOp joins consecutive condition results during the fold.
type LogicalOp string

const (
	// LogicalAnd requires both sides to hold
	LogicalAnd LogicalOp = "AND"
	// LogicalOr requires either side to hold
	LogicalOr LogicalOp = "OR"
	// LogicalNot requires the accumulator to hold and the next result not to
	LogicalNot LogicalOp = "NOT"
	// LogicalNone means no operator was attached; folds as OR
	LogicalNone LogicalOp = ""
)

// orDefault resolves an absent logical operator to OR at fold time.
func (op LogicalOp) orDefault() LogicalOp {
	if op == LogicalNone {
		return LogicalOr
	}
	return op
}

// ParseLogicalOp recognizes a logical-operator keyword, case-insensitively.
func ParseLogicalOp(token string) (LogicalOp, bool) {
	switch strings.ToUpper(token) {
	case "AND":
		return LogicalAnd, true
	case "OR":
		return LogicalOr, true
	case "NOT":
		return LogicalNot, true
	default:
		return LogicalNone, false
	}
}

// Condition is one leaf test against an attribute column.
//
// Link is the logical operator attached to this condition. It governs how
// the NEXT condition's result is folded into the accumulator, not how
// this condition joins its predecessor. This asymmetric shift is the
// engine's defining evaluation order; see evaluateSequence.
type Condition struct {
	Column string    `json:"column"`
	Op     Operator  `json:"operator"`
	Value  string    `json:"value"`
	Link   LogicalOp `json:"logical_op,omitempty"`
}

// Groups holds ordered condition lists keyed by attribute column. Order
// within a list is evaluation order and is never rearranged.
type Groups map[string][]Condition

// Filter is a complete parsed filter: node-scoped and edge-scoped
// condition groups.
type Filter struct {
	Node Groups `json:"node,omitempty"`
	Edge Groups `json:"edge,omitempty"`
}

// Column prefixes marking a condition's target entity kind.
const (
	NodeScope = "node."
	EdgeScope = "edge."
)

// GroupConditions splits a flat, scope-prefixed condition list into a
// Filter, grouping by column with the prefix stripped. Positional order
// within each column is preserved. Conditions without a scope prefix are
// treated as node-scoped.
func GroupConditions(conditions []Condition) Filter {
	f := Filter{Node: Groups{}, Edge: Groups{}}
	for _, cond := range conditions {
		switch {
		case strings.HasPrefix(cond.Column, EdgeScope):
			cond.Column = strings.TrimPrefix(cond.Column, EdgeScope)
			f.Edge[cond.Column] = append(f.Edge[cond.Column], cond)
		case strings.HasPrefix(cond.Column, NodeScope):
			cond.Column = strings.TrimPrefix(cond.Column, NodeScope)
			f.Node[cond.Column] = append(f.Node[cond.Column], cond)
		default:
			f.Node[cond.Column] = append(f.Node[cond.Column], cond)
		}
	}
	return f
}
