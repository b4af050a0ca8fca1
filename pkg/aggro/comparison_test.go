package aggro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-aggro/pkg/aggro"
)

func TestComparisonWireNames(t *testing.T) {
	cases := []struct {
		expr aggro.Expr
		name string
	}{
		{&aggro.EqExpr{Left: aggro.F("a"), Right: 1}, "$eq"},
		{&aggro.NeExpr{Left: aggro.F("a"), Right: 1}, "$ne"},
		{&aggro.GtExpr{Left: aggro.F("a"), Right: 1}, "$gt"},
		{&aggro.GteExpr{Left: aggro.F("a"), Right: 1}, "$gte"},
		{&aggro.LtExpr{Left: aggro.F("a"), Right: 1}, "$lt"},
		{&aggro.LteExpr{Left: aggro.F("a"), Right: 1}, "$lte"},
		{&aggro.CmpExpr{Left: aggro.F("a"), Right: 1}, "$cmp"},
	}

	for _, tc := range cases {
		wire, ok := tc.expr.ToWire().(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []any{"$a", 1}, wire[tc.name], tc.name)
	}
}

func TestNewEqMissingRight(t *testing.T) {
	_, err := aggro.NewEq(aggro.F("a"), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, aggro.ErrMissingOperand)
	assert.Contains(t, err.Error(), "right")
}

func TestNewEqMissingLeft(t *testing.T) {
	_, err := aggro.NewEq(nil, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, aggro.ErrMissingOperand)
	assert.Contains(t, err.Error(), "left")
}

func TestNewComparisons(t *testing.T) {
	gt, err := aggro.NewGt(aggro.F("age"), 18)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"$gt": []any{"$age", 18}}, gt.ToWire())

	cmp, err := aggro.NewCmp(aggro.F("a"), aggro.F("b"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"$cmp": []any{"$a", "$b"}}, cmp.ToWire())
}

func TestComparisonWithNestedExpression(t *testing.T) {
	got := aggro.F("total").Gt(aggro.Add(aggro.F("base"), aggro.F("tax"))).ToWire()

	assert.Equal(t, map[string]any{"$gt": []any{
		"$total",
		map[string]any{"$add": []any{"$base", "$tax"}},
	}}, got)
}
