package aggro

// Array operators.

// InExpr is the $in operator. It tests whether a value occurs in an array.
type InExpr struct {
	Value any
	Array any
}

func (e *InExpr) ToWire() any {
	return map[string]any{"$in": []any{Serialize(e.Value), Serialize(e.Array)}}
}

// SizeExpr is the $size operator.
type SizeExpr struct {
	Array any
}

func (e *SizeExpr) ToWire() any {
	return map[string]any{"$size": Serialize(e.Array)}
}

// ArrayElemAtExpr is the $arrayElemAt operator. Negative indices count from
// the end of the array.
type ArrayElemAtExpr struct {
	Array any
	Index any
}

func (e *ArrayElemAtExpr) ToWire() any {
	return map[string]any{"$arrayElemAt": []any{Serialize(e.Array), Serialize(e.Index)}}
}

// FilterExpr is the $filter operator. As defaults to "this" when empty, which
// matches the variable name the server binds by default.
type FilterExpr struct {
	Input any
	Cond  any
	As    string
	Limit int
}

func (e *FilterExpr) ToWire() any {
	name := e.As
	if name == "" {
		name = "this"
	}

	body := map[string]any{
		"input": Serialize(e.Input),
		"as":    name,
		"cond":  Serialize(e.Cond),
	}
	if e.Limit > 0 {
		body["limit"] = e.Limit
	}

	return map[string]any{"$filter": body}
}

// NewFilter builds a $filter node, failing when input or cond is missing.
func NewFilter(input, cond any, as string) (*FilterExpr, error) {
	if input == nil {
		return nil, missingOperand("input")
	}
	if cond == nil {
		return nil, missingOperand("cond")
	}

	return &FilterExpr{Input: input, Cond: cond, As: as}, nil
}
