package aggro

// String operators.

// ConcatExpr is the $concat operator over any number of string operands.
type ConcatExpr struct {
	Strings []any
}

func (e *ConcatExpr) ToWire() any {
	return map[string]any{"$concat": serializeAll(e.Strings)}
}

// Concat builds a $concat node over the given operands.
func Concat(strings ...any) *ConcatExpr {
	return &ConcatExpr{Strings: strings}
}

// SplitExpr is the $split operator.
type SplitExpr struct {
	Input     any
	Delimiter string
}

func (e *SplitExpr) ToWire() any {
	return map[string]any{"$split": []any{Serialize(e.Input), e.Delimiter}}
}

// ToLowerExpr is the $toLower operator.
type ToLowerExpr struct {
	Input any
}

func (e *ToLowerExpr) ToWire() any {
	return map[string]any{"$toLower": Serialize(e.Input)}
}

// ToUpperExpr is the $toUpper operator.
type ToUpperExpr struct {
	Input any
}

func (e *ToUpperExpr) ToWire() any {
	return map[string]any{"$toUpper": Serialize(e.Input)}
}

// TrimExpr is the $trim operator. Chars is optional; when empty, whitespace
// is trimmed.
type TrimExpr struct {
	Input any
	Chars string
}

func (e *TrimExpr) ToWire() any {
	body := map[string]any{"input": Serialize(e.Input)}
	if e.Chars != "" {
		body["chars"] = e.Chars
	}

	return map[string]any{"$trim": body}
}

// StrLenCPExpr is the $strLenCP operator, the string length in code points.
type StrLenCPExpr struct {
	Input any
}

func (e *StrLenCPExpr) ToWire() any {
	return map[string]any{"$strLenCP": Serialize(e.Input)}
}
