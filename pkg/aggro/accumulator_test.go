package aggro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-aggro/pkg/aggro"
)

func TestSum(t *testing.T) {
	assert.Equal(t, map[string]any{"$sum": "$amount"}, aggro.Sum(aggro.F("amount")).ToWire())

	// Counting documents.
	assert.Equal(t, map[string]any{"$sum": 1}, aggro.Sum(1).ToWire())
}

func TestAccumulators(t *testing.T) {
	assert.Equal(t, map[string]any{"$avg": "$score"},
		(&aggro.AvgExpr{Input: aggro.F("score")}).ToWire())
	assert.Equal(t, map[string]any{"$min": "$price"},
		(&aggro.MinExpr{Input: aggro.F("price")}).ToWire())
	assert.Equal(t, map[string]any{"$max": "$price"},
		(&aggro.MaxExpr{Input: aggro.F("price")}).ToWire())
	assert.Equal(t, map[string]any{"$first": "$created_at"},
		(&aggro.FirstExpr{Input: aggro.F("created_at")}).ToWire())
	assert.Equal(t, map[string]any{"$last": "$created_at"},
		(&aggro.LastExpr{Input: aggro.F("created_at")}).ToWire())
	assert.Equal(t, map[string]any{"$push": "$item"},
		(&aggro.PushExpr{Input: aggro.F("item")}).ToWire())
	assert.Equal(t, map[string]any{"$addToSet": "$tag"},
		(&aggro.AddToSetExpr{Input: aggro.F("tag")}).ToWire())
}

func TestPushDocument(t *testing.T) {
	got := (&aggro.PushExpr{Input: map[string]any{
		"sku": aggro.F("sku"),
		"qty": aggro.F("qty"),
	}}).ToWire()

	assert.Equal(t, map[string]any{"$push": map[string]any{
		"sku": "$sku",
		"qty": "$qty",
	}}, got)
}
