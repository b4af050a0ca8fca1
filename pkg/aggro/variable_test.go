package aggro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-aggro/pkg/aggro"
)

func TestLet(t *testing.T) {
	got := (&aggro.LetExpr{
		Vars: map[string]any{"total": aggro.Add(aggro.F("price"), aggro.F("tax"))},
		In:   aggro.Var("total").Gt(100),
	}).ToWire()

	assert.Equal(t, map[string]any{"$let": map[string]any{
		"vars": map[string]any{
			"total": map[string]any{"$add": []any{"$price", "$tax"}},
		},
		"in": map[string]any{"$gt": []any{"$$total", 100}},
	}}, got)
}

func TestNewLetRequiresIn(t *testing.T) {
	_, err := aggro.NewLet(map[string]any{"x": 1}, nil)
	require.ErrorIs(t, err, aggro.ErrMissingOperand)
	assert.Contains(t, err.Error(), "in")
}

func TestLiteralSkipsSerialisation(t *testing.T) {
	got := (&aggro.LiteralExpr{Value: "$price"}).ToWire()
	assert.Equal(t, map[string]any{"$literal": "$price"}, got)

	// A Field inside $literal stays as given, not re-serialised.
	gotField := (&aggro.LiteralExpr{Value: aggro.F("price")}).ToWire()
	assert.Equal(t, map[string]any{"$literal": aggro.F("price")}, gotField)
}

func TestRand(t *testing.T) {
	assert.Equal(t, map[string]any{"$rand": map[string]any{}}, (aggro.RandExpr{}).ToWire())
}
