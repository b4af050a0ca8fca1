package aggro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-aggro/pkg/aggro"
)

func TestConcat(t *testing.T) {
	got := aggro.Concat(aggro.F("first"), " ", aggro.F("last")).ToWire()
	assert.Equal(t, map[string]any{"$concat": []any{"$first", " ", "$last"}}, got)
}

func TestSplit(t *testing.T) {
	got := (&aggro.SplitExpr{Input: aggro.F("tags"), Delimiter: ","}).ToWire()
	assert.Equal(t, map[string]any{"$split": []any{"$tags", ","}}, got)
}

func TestCaseOperators(t *testing.T) {
	assert.Equal(t, map[string]any{"$toLower": "$email"},
		(&aggro.ToLowerExpr{Input: aggro.F("email")}).ToWire())
	assert.Equal(t, map[string]any{"$toUpper": "$code"},
		(&aggro.ToUpperExpr{Input: aggro.F("code")}).ToWire())
}

func TestTrim(t *testing.T) {
	got := (&aggro.TrimExpr{Input: aggro.F("name")}).ToWire()
	assert.Equal(t, map[string]any{"$trim": map[string]any{"input": "$name"}}, got)

	gotChars := (&aggro.TrimExpr{Input: aggro.F("name"), Chars: "*"}).ToWire()
	assert.Equal(t, map[string]any{"$trim": map[string]any{
		"input": "$name",
		"chars": "*",
	}}, gotChars)
}

func TestStrLenCP(t *testing.T) {
	got := (&aggro.StrLenCPExpr{Input: aggro.F("name")}).ToWire()
	assert.Equal(t, map[string]any{"$strLenCP": "$name"}, got)
}
