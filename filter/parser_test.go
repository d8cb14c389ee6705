package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/graphfilter/errors"
)

func TestParseSingleCondition(t *testing.T) {
	f, err := Parse("Node aff = U2")
	require.NoError(t, err)

	require.Len(t, f.Node, 1)
	require.Len(t, f.Node["aff"], 1)
	cond := f.Node["aff"][0]
	assert.Equal(t, "aff", cond.Column)
	assert.Equal(t, OpEqual, cond.Op)
	assert.Equal(t, "U2", cond.Value)
	assert.Equal(t, LogicalNone, cond.Link)
	assert.Empty(t, f.Edge)
}

func TestParseMultipleConditions(t *testing.T) {
	f, err := Parse("node aff = U1 OR node aff = U2 edge kind = employs")
	require.NoError(t, err)

	require.Len(t, f.Node["aff"], 2)
	assert.Equal(t, LogicalOr, f.Node["aff"][0].Link)
	assert.Equal(t, LogicalNone, f.Node["aff"][1].Link)

	require.Len(t, f.Edge["kind"], 1)
	assert.Equal(t, "employs", f.Edge["kind"][0].Value)
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	f, err := Parse("NODE dept = research and EDGE kind <> mentors")
	require.NoError(t, err)

	require.Len(t, f.Node["dept"], 1)
	assert.Equal(t, LogicalAnd, f.Node["dept"][0].Link)
	require.Len(t, f.Edge["kind"], 1)
	assert.Equal(t, OpNotEqual, f.Edge["kind"][0].Op)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		sentinel error
	}{
		{"empty input", "", errors.ErrEmptyFilter},
		{"whitespace only", "   \n\t", errors.ErrEmptyFilter},
		{"missing value", "Node aff =", errors.ErrIncompleteCondition},
		{"missing operator and value", "Node aff", errors.ErrIncompleteCondition},
		{"dangling second group", "Node aff = U2 AND Node dept", errors.ErrIncompleteCondition},
		{"bad entity keyword", "Vertex aff = U2", errors.ErrUnknownEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestParseUnknownOperatorIsNotAParseError(t *testing.T) {
	// The grammar accepts any operator token; comparison soft-fails later
	f, err := Parse("Node aff ~= U2")
	require.NoError(t, err)
	require.Len(t, f.Node["aff"], 1)
	assert.Equal(t, Operator("~="), f.Node["aff"][0].Op)

	engine := New()
	assert.False(t, engine.EvaluateEntity(map[string]any{"aff": "U2"}, f.Node))
}

func TestParseNoPartialResults(t *testing.T) {
	f, err := Parse("Node aff = U2 Edge kind =")
	require.Error(t, err)
	assert.Empty(t, f.Node)
	assert.Empty(t, f.Edge)
}

func TestParseLogicalOpKeyword(t *testing.T) {
	tests := []struct {
		token    string
		expected LogicalOp
		ok       bool
	}{
		{"AND", LogicalAnd, true},
		{"and", LogicalAnd, true},
		{"Or", LogicalOr, true},
		{"not", LogicalNot, true},
		{"node", LogicalNone, false},
		{"&&", LogicalNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseLogicalOp(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
