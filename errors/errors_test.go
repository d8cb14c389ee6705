package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("token stream exhausted")
	err := Wrap(base, "Parser", "Parse", "condition group")

	require.Error(t, err)
	assert.Equal(t, "Parser.Parse: condition group failed: token stream exhausted", err.Error())
	assert.True(t, errors.Is(err, base))

	assert.NoError(t, Wrap(nil, "Parser", "Parse", "condition group"))
}

func TestWrapInvalidClassification(t *testing.T) {
	err := WrapInvalid(ErrIncompleteCondition, "Parser", "Parse", "token group")

	require.Error(t, err)
	assert.True(t, IsInvalid(err))
	assert.False(t, IsFatal(err))
	assert.Equal(t, ErrorInvalid, Classify(err))
	assert.True(t, errors.Is(err, ErrIncompleteCondition))

	var ce *ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Parser", ce.Component)
	assert.Equal(t, "Parse", ce.Operation)
}

func TestSentinelClassification(t *testing.T) {
	sentinels := []error{
		ErrEmptyFilter,
		ErrIncompleteCondition,
		ErrUnknownEntity,
		ErrMissingEndpoint,
		ErrInvalidDocument,
		ErrInvalidConfig,
		ErrMissingConfig,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			assert.True(t, IsInvalid(sentinel))
			assert.Equal(t, ErrorInvalid, Classify(sentinel))
		})
	}
}

func TestClassifyDefaults(t *testing.T) {
	// Unknown errors default to transient so callers may retry
	assert.Equal(t, ErrorTransient, Classify(errors.New("something else")))
	assert.Equal(t, ErrorTransient, Classify(nil))
}

func TestWrappedSentinelSurvivesChain(t *testing.T) {
	err := fmt.Errorf("loading graph: %w",
		WrapInvalid(ErrMissingEndpoint, "Store", "Load", "edge normalization"))

	assert.True(t, IsInvalid(err))
	assert.True(t, errors.Is(err, ErrMissingEndpoint))
}

func TestWrapFatal(t *testing.T) {
	base := errors.New("attribute index corrupted")
	err := WrapFatal(base, "Adjacency", "Build", "index construction")

	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.False(t, IsInvalid(err))
	assert.Equal(t, ErrorFatal, Classify(err))
}
