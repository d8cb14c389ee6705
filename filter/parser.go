package filter

import (
	"strings"

	"github.com/c360/graphfilter/errors"
)

// Parse reads the minimal whitespace-tokenized filter grammar:
//
//	<Entity> <Column> <Operator> <Value> [<LogicalOp>]
//
// repeated, where Entity is Node or Edge (case-insensitive) and LogicalOp
// is AND, OR or NOT (case-insensitive). Values containing whitespace are
// not expressible in this grammar; there is no quoting.
//
// An incomplete token group is a hard parse error and the whole filter is
// rejected, never partially applied. An unrecognized operator token is
// NOT a parse error: it is carried through and fails every comparison,
// degrading that one condition to "never matches".
func Parse(text string) (Filter, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return Filter{}, errors.WrapInvalid(errors.ErrEmptyFilter, "filter", "Parse", "tokenizing")
	}

	var conditions []Condition
	i := 0
	for i < len(tokens) {
		if len(tokens)-i < 4 {
			return Filter{}, errors.WrapInvalid(errors.ErrIncompleteCondition, "filter", "Parse", "condition group")
		}

		var scope string
		switch strings.ToLower(tokens[i]) {
		case "node":
			scope = NodeScope
		case "edge":
			scope = EdgeScope
		default:
			return Filter{}, errors.WrapInvalid(errors.ErrUnknownEntity, "filter", "Parse", "entity keyword")
		}

		cond := Condition{
			Column: scope + tokens[i+1],
			Op:     Operator(tokens[i+2]),
			Value:  tokens[i+3],
		}
		i += 4

		if i < len(tokens) {
			if link, ok := ParseLogicalOp(tokens[i]); ok {
				cond.Link = link
				i++
			}
		}
		conditions = append(conditions, cond)
	}

	return GroupConditions(conditions), nil
}
