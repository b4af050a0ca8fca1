package aggro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-aggro/pkg/aggro"
)

func TestPipelinePreservesOrder(t *testing.T) {
	pipe := aggro.New(
		&aggro.Match{Query: map[string]any{"status": "active"}},
		&aggro.Sort{Fields: map[string]int{"age": aggro.Asc}},
		&aggro.Limit{Count: 5},
	)

	got := pipe.ToWireList()
	require.Len(t, got, 3)
	assert.Equal(t, map[string]any{"$match": map[string]any{"status": "active"}}, got[0])
	assert.Equal(t, map[string]any{"$sort": map[string]any{"age": 1}}, got[1])
	assert.Equal(t, map[string]any{"$limit": 5}, got[2])
}

func TestPipelineAppendChains(t *testing.T) {
	pipe := aggro.New().
		Append(&aggro.Skip{Count: 10}).
		Append(&aggro.Limit{Count: 5})

	assert.Equal(t, 2, pipe.Len())
}

func TestPipelineZeroValue(t *testing.T) {
	var pipe aggro.Pipeline

	assert.Equal(t, 0, pipe.Len())
	assert.Empty(t, pipe.ToWireList())

	pipe.Append(&aggro.Limit{Count: 1})
	assert.Equal(t, 1, pipe.Len())
}

func TestPipelineAt(t *testing.T) {
	match := &aggro.Match{Query: map[string]any{"a": 1}}
	limit := &aggro.Limit{Count: 5}
	pipe := aggro.New(match, limit)

	first, err := pipe.At(0)
	require.NoError(t, err)
	assert.Equal(t, match, first)

	last, err := pipe.At(-1)
	require.NoError(t, err)
	assert.Equal(t, limit, last)

	head, err := pipe.At(-2)
	require.NoError(t, err)
	assert.Equal(t, match, head)
}

func TestPipelineAtOutOfRange(t *testing.T) {
	pipe := aggro.New(&aggro.Limit{Count: 5})

	_, err := pipe.At(1)
	require.ErrorIs(t, err, aggro.ErrIndexOutOfRange)

	_, err = pipe.At(-2)
	require.ErrorIs(t, err, aggro.ErrIndexOutOfRange)

	var empty aggro.Pipeline
	_, err = empty.At(0)
	require.ErrorIs(t, err, aggro.ErrIndexOutOfRange)
}

func TestToWireListSnapshotsStages(t *testing.T) {
	pipe := aggro.New(&aggro.Limit{Count: 5})

	before := pipe.ToWireList()
	pipe.Append(&aggro.Skip{Count: 10})

	assert.Len(t, before, 1)
	assert.Len(t, pipe.ToWireList(), 2)
}

func TestWireIsRestartable(t *testing.T) {
	pipe := aggro.New(
		&aggro.Match{Query: map[string]any{"a": 1}},
		&aggro.Limit{Count: 5},
	)

	var first []any
	for wire := range pipe.Wire() {
		first = append(first, wire)
	}

	var second []any
	for wire := range pipe.Wire() {
		second = append(second, wire)
	}

	assert.Equal(t, pipe.ToWireList(), first)
	assert.Equal(t, first, second)
}

func TestWireStopsEarly(t *testing.T) {
	pipe := aggro.New(
		&aggro.Skip{Count: 1},
		&aggro.Skip{Count: 2},
		&aggro.Skip{Count: 3},
	)

	var seen int
	for range pipe.Wire() {
		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}
