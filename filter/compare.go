package filter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// datePattern matches ISO dates with zero-padded components. Fixed width
// makes lexicographic comparison equivalent to chronological comparison.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// compareValue tests one attribute value against an operator/target pair.
// The coercion ladder, first rule wins:
//
//  1. Both sides parse to finite numbers (ordering operators only) → numeric
//  2. Both sides look like ISO dates → lexicographic on the raw strings
//  3. Otherwise case-insensitive string comparison; contains is a
//     lowercase substring test
//
// An unknown operator returns false rather than raising; a broken
// condition degrades to "never matches" instead of aborting the filter.
func compareValue(value string, op Operator, target string) bool {
	if isOrderingOp(op) {
		if v, t, ok := numericPair(value, target); ok {
			return compareFloats(v, op, t)
		}
		if datePattern.MatchString(value) && datePattern.MatchString(target) {
			return compareStrings(value, op, target)
		}
	}
	return compareStrings(strings.ToLower(value), op, strings.ToLower(target))
}

// isOrderingOp reports whether op has a numeric/chronological meaning.
// contains is excluded: it always takes the string path.
func isOrderingOp(op Operator) bool {
	switch op {
	case OpEqual, OpNotEqual, OpGreater, OpGreaterOrEqual, OpLess, OpLessOrEqual:
		return true
	default:
		return false
	}
}

// numericPair parses both sides as finite numbers. Either side being
// empty after trimming disqualifies the numeric path.
func numericPair(value, target string) (float64, float64, bool) {
	value = strings.TrimSpace(value)
	target = strings.TrimSpace(target)
	if value == "" || target == "" {
		return 0, 0, false
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, 0, false
	}
	t, err := strconv.ParseFloat(target, 64)
	if err != nil || math.IsInf(t, 0) || math.IsNaN(t) {
		return 0, 0, false
	}
	return v, t, true
}

func compareFloats(v float64, op Operator, t float64) bool {
	switch op {
	case OpEqual:
		return v == t
	case OpNotEqual:
		return v != t
	case OpGreater:
		return v > t
	case OpGreaterOrEqual:
		return v >= t
	case OpLess:
		return v < t
	case OpLessOrEqual:
		return v <= t
	default:
		return false
	}
}

func compareStrings(v string, op Operator, t string) bool {
	switch op {
	case OpEqual:
		return v == t
	case OpNotEqual:
		return v != t
	case OpGreater:
		return v > t
	case OpGreaterOrEqual:
		return v >= t
	case OpLess:
		return v < t
	case OpLessOrEqual:
		return v <= t
	case OpContains:
		return strings.Contains(v, t)
	default:
		// Unknown operators never match
		return false
	}
}
