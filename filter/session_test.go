package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/graphfilter/graph"
)

func sessionStore(aff string) *graph.Store {
	return graph.NewStore(
		[]graph.Node{{ID: "a", Attributes: map[string]any{"aff": aff}}},
		[]graph.Edge{{ID: "e1", SourceID: "a", TargetID: "a", Attributes: map[string]any{"aff": aff}}},
	)
}

func TestSessionEvaluate(t *testing.T) {
	session := NewSession(New(), sessionStore("U2"), 8)

	result, err := session.Evaluate("Node aff = U2")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, result.NodeIDs.Sorted())
	assert.Equal(t, []string{"e1"}, result.InferredEdgeIDs.Sorted())
}

func TestSessionCachesByFilterText(t *testing.T) {
	session := NewSession(New(), sessionStore("U2"), 8)

	first, err := session.Evaluate("Node aff = U2")
	require.NoError(t, err)
	second, err := session.Evaluate("Node aff = U2")
	require.NoError(t, err)

	assert.Equal(t, first.NodeIDs.Sorted(), second.NodeIDs.Sorted())
	assert.Equal(t, int64(1), session.CacheStats().Hits())
	assert.Equal(t, int64(1), session.CacheStats().Misses())
}

func TestSessionParseErrorsAreNotCached(t *testing.T) {
	session := NewSession(New(), sessionStore("U2"), 8)

	_, err := session.Evaluate("Node aff =")
	require.Error(t, err)
	_, err = session.Evaluate("Node aff =")
	require.Error(t, err)

	assert.Equal(t, int64(0), session.CacheStats().Hits())
}

func TestSessionReset(t *testing.T) {
	session := NewSession(New(), sessionStore("U2"), 8)

	result, err := session.Evaluate("Node aff = U2")
	require.NoError(t, err)
	require.Len(t, result.NodeIDs, 1)

	// Graph mutated: the old cached result must not survive
	session.Reset(sessionStore("U9"))

	result, err = session.Evaluate("Node aff = U2")
	require.NoError(t, err)
	assert.Empty(t, result.NodeIDs)
}

func TestSessionZeroCacheSize(t *testing.T) {
	session := NewSession(New(), sessionStore("U2"), 0)

	result, err := session.Evaluate("Node aff = U2")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, result.NodeIDs.Sorted())

	// Nothing cached, second call recomputes
	_, err = session.Evaluate("Node aff = U2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), session.CacheStats().Hits())
}
