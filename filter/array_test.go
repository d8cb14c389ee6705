package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func indices(s indexSet) []int {
	out := []int{}
	for i := 0; i < 64; i++ {
		if _, ok := s[i]; ok {
			out = append(out, i)
		}
	}
	return out
}

func TestMatchedIndicesSingleCondition(t *testing.T) {
	got := matchedIndices([]string{"a", "b", "c"}, []Condition{{Op: OpEqual, Value: "b"}})
	assert.Equal(t, []int{1}, indices(got))
}

func TestMatchedIndicesEmptyInputs(t *testing.T) {
	assert.Empty(t, matchedIndices(nil, []Condition{{Op: OpEqual, Value: "a"}}))
	assert.Empty(t, matchedIndices([]string{"a"}, nil))
	assert.Empty(t, matchedIndices([]string{}, []Condition{}))
}

func TestMatchedIndicesFold(t *testing.T) {
	items := []string{"u1", "u2", "u1", "u3"}

	tests := []struct {
		name     string
		conds    []Condition
		expected []int
	}{
		{
			name: "OR unions positions",
			conds: []Condition{
				{Op: OpEqual, Value: "u1", Link: LogicalOr},
				{Op: OpEqual, Value: "u3"},
			},
			expected: []int{0, 2, 3},
		},
		{
			name: "AND intersects positions",
			conds: []Condition{
				{Op: OpContains, Value: "u", Link: LogicalAnd},
				{Op: OpEqual, Value: "u2"},
			},
			expected: []int{1},
		},
		{
			name: "NOT subtracts positions",
			conds: []Condition{
				{Op: OpContains, Value: "u", Link: LogicalNot},
				{Op: OpEqual, Value: "u1"},
			},
			expected: []int{1, 3},
		},
		{
			name: "default link is OR",
			conds: []Condition{
				{Op: OpEqual, Value: "u2"},
				{Op: OpEqual, Value: "u3"},
			},
			expected: []int{1, 3},
		},
		{
			name: "disjoint AND empties the set",
			conds: []Condition{
				{Op: OpEqual, Value: "u1", Link: LogicalAnd},
				{Op: OpEqual, Value: "u2"},
			},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, indices(matchedIndices(items, tt.conds)))
		})
	}
}

func TestMatchedIndicesCaseInsensitive(t *testing.T) {
	got := matchedIndices([]string{"Alpha", "BETA"}, []Condition{{Op: OpEqual, Value: "beta"}})
	assert.Equal(t, []int{1}, indices(got))
}

func TestIndexSetOperations(t *testing.T) {
	a := indexSet{0: {}, 1: {}, 2: {}}
	b := indexSet{1: {}, 3: {}}

	assert.Equal(t, []int{0, 1, 2, 3}, indices(a.union(b)))
	assert.Equal(t, []int{1}, indices(a.intersect(b)))
	assert.Equal(t, []int{0, 2}, indices(a.difference(b)))
}
