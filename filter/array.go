package filter

// indexSet is a set of positions within a multi-valued attribute.
type indexSet map[int]struct{}

func (s indexSet) union(other indexSet) indexSet {
	out := make(indexSet, len(s)+len(other))
	for idx := range s {
		out[idx] = struct{}{}
	}
	for idx := range other {
		out[idx] = struct{}{}
	}
	return out
}

func (s indexSet) intersect(other indexSet) indexSet {
	out := indexSet{}
	for idx := range s {
		if _, ok := other[idx]; ok {
			out[idx] = struct{}{}
		}
	}
	return out
}

func (s indexSet) difference(other indexSet) indexSet {
	out := indexSet{}
	for idx := range s {
		if _, ok := other[idx]; !ok {
			out[idx] = struct{}{}
		}
	}
	return out
}

// matchedIndices is the multi-valued analogue of evaluateSequence: the
// same (accumulator, pendingOp) fold, but over sets of matching positions
// instead of booleans. AND intersects, OR unions, NOT subtracts. The
// result is the set of positions satisfying the whole condition sequence;
// callers needing a plain boolean test it for non-emptiness.
func matchedIndices(items []string, conditions []Condition) indexSet {
	if len(items) == 0 || len(conditions) == 0 {
		return indexSet{}
	}

	result := conditionIndices(items, conditions[0])
	pending := conditions[0].Link.orDefault()

	for _, cond := range conditions[1:] {
		r := conditionIndices(items, cond)
		switch pending {
		case LogicalAnd:
			result = result.intersect(r)
		case LogicalNot:
			result = result.difference(r)
		default:
			result = result.union(r)
		}
		pending = cond.Link.orDefault()
	}
	return result
}

// conditionIndices collects the positions where one condition holds.
func conditionIndices(items []string, cond Condition) indexSet {
	matched := indexSet{}
	for idx, item := range items {
		if compareValue(item, cond.Op, cond.Value) {
			matched[idx] = struct{}{}
		}
	}
	return matched
}
