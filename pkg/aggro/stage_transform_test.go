package aggro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-aggro/pkg/aggro"
)

func TestAddFieldsAndSet(t *testing.T) {
	fields := map[string]any{"total": aggro.Add(aggro.F("price"), aggro.F("tax"))}
	want := map[string]any{"total": map[string]any{"$add": []any{"$price", "$tax"}}}

	assert.Equal(t, map[string]any{"$addFields": want}, (&aggro.AddFields{Fields: fields}).ToWire())
	assert.Equal(t, map[string]any{"$set": want}, (&aggro.Set{Fields: fields}).ToWire())
}

func TestUnsetSingleField(t *testing.T) {
	got := (&aggro.Unset{Fields: []string{"secret"}}).ToWire()
	assert.Equal(t, map[string]any{"$unset": "secret"}, got)
}

func TestUnsetManyFields(t *testing.T) {
	got := (&aggro.Unset{Fields: []string{"secret", "internal"}}).ToWire()
	assert.Equal(t, map[string]any{"$unset": []any{"secret", "internal"}}, got)
}

func TestReplaceRoot(t *testing.T) {
	got := (&aggro.ReplaceRoot{NewRoot: aggro.F("details")}).ToWire()
	assert.Equal(t, map[string]any{
		"$replaceRoot": map[string]any{"newRoot": "$details"},
	}, got)
}

func TestReplaceWith(t *testing.T) {
	got := (&aggro.ReplaceWith{Expression: aggro.F("details")}).ToWire()
	assert.Equal(t, map[string]any{"$replaceWith": "$details"}, got)
}

func TestRedact(t *testing.T) {
	got := (&aggro.Redact{Expression: aggro.F("level")}).ToWire()
	assert.Equal(t, map[string]any{"$redact": "$level"}, got)
}

func TestUnwindBareForm(t *testing.T) {
	got := (&aggro.Unwind{Path: "items"}).ToWire()
	assert.Equal(t, map[string]any{"$unwind": "$items"}, got)
}

func TestUnwindDocumentForm(t *testing.T) {
	got := (&aggro.Unwind{
		Path:                 "items",
		IncludeArrayIndex:    "idx",
		PreserveNullAndEmpty: true,
	}).ToWire()

	assert.Equal(t, map[string]any{"$unwind": map[string]any{
		"path":                       "$items",
		"includeArrayIndex":          "idx",
		"preserveNullAndEmptyArrays": true,
	}}, got)
}
