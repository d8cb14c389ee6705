package filter

// evaluateSequence folds an ordered condition list over one scalar value.
// An empty list never matches.
//
// The fold carries a (result, pendingOp) pair: pendingOp is the logical
// operator attached to the PREVIOUS condition and governs how the current
// condition's outcome merges into the accumulator. A condition without an
// attached operator contributes OR. Getting this shift wrong inverts
// real-world filters, so the loop mirrors the accumulator form exactly.
func evaluateSequence(value string, conditions []Condition) bool {
	if len(conditions) == 0 {
		return false
	}

	result := compareValue(value, conditions[0].Op, conditions[0].Value)
	pending := conditions[0].Link.orDefault()

	for _, cond := range conditions[1:] {
		r := compareValue(value, cond.Op, cond.Value)
		result = combine(result, pending, r)
		pending = cond.Link.orDefault()
	}
	return result
}

// combine merges the next condition's result into the accumulator.
func combine(acc bool, op LogicalOp, next bool) bool {
	switch op {
	case LogicalAnd:
		return acc && next
	case LogicalNot:
		return acc && !next
	default:
		return acc || next
	}
}
