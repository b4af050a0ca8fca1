package load_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-aggro/pkg/aggro"
	"github.com/askiada/go-aggro/pkg/aggro/load"
)

func TestFromYAML(t *testing.T) {
	pipe, err := load.FromYAML([]byte(`
- $match:
    status: active
- $sort:
    total: -1
- $limit: 5
`))
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"$match": map[string]any{"status": "active"}},
		map[string]any{"$sort": map[string]any{"total": -1}},
		map[string]any{"$limit": 5},
	}, pipe.ToWireList())
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := load.FromYAML([]byte(`{not yaml`))
	require.Error(t, err)
}

func TestFromYAMLUnknownStage(t *testing.T) {
	_, err := load.FromYAML([]byte(`
- $nope: 1
`))
	require.ErrorIs(t, err, aggro.ErrUnknownField)
}

func TestFromJSON(t *testing.T) {
	pipe, err := load.FromJSON([]byte(`[
		{"$match": {"status": "active"}},
		{"$group": {"_id": "$status", "n": {"$sum": 1}}},
		{"$limit": 5}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"$match": map[string]any{"status": "active"}},
		map[string]any{"$group": map[string]any{
			"_id": "$status",
			"n":   map[string]any{"$sum": 1},
		}},
		map[string]any{"$limit": 5},
	}, pipe.ToWireList())
}

func TestFromJSONScalarKinds(t *testing.T) {
	pipe, err := load.FromJSON([]byte(`[
		{"$match": {"ratio": 0.5, "active": true, "note": null}}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"$match": map[string]any{
			"ratio":  0.5,
			"active": true,
			"note":   nil,
		}},
	}, pipe.ToWireList())
}

func TestFromJSONNotAnArray(t *testing.T) {
	_, err := load.FromJSON([]byte(`{"$limit": 5}`))
	require.Error(t, err)
}

func TestFromJSONStageNotAnObject(t *testing.T) {
	_, err := load.FromJSON([]byte(`[5]`))
	require.ErrorIs(t, err, aggro.ErrInvalidOperandType)
}

func TestFromJSONMalformed(t *testing.T) {
	_, err := load.FromJSON([]byte(`[{"$limit": ]`))
	require.Error(t, err)
}
