package aggro

// Arithmetic operators.

// AddExpr is the $add operator. It accepts any number of operands and also
// adds durations to dates.
type AddExpr struct {
	Operands []any
}

func (e *AddExpr) ToWire() any {
	return map[string]any{"$add": serializeAll(e.Operands)}
}

// Add builds an $add node over the given operands.
func Add(operands ...any) *AddExpr {
	return &AddExpr{Operands: operands}
}

// SubtractExpr is the $subtract operator.
type SubtractExpr struct {
	Left  any
	Right any
}

func (e *SubtractExpr) ToWire() any {
	return map[string]any{"$subtract": []any{Serialize(e.Left), Serialize(e.Right)}}
}

// MultiplyExpr is the $multiply operator over any number of operands.
type MultiplyExpr struct {
	Operands []any
}

func (e *MultiplyExpr) ToWire() any {
	return map[string]any{"$multiply": serializeAll(e.Operands)}
}

// Multiply builds a $multiply node over the given operands.
func Multiply(operands ...any) *MultiplyExpr {
	return &MultiplyExpr{Operands: operands}
}

// DivideExpr is the $divide operator.
type DivideExpr struct {
	Dividend any
	Divisor  any
}

func (e *DivideExpr) ToWire() any {
	return map[string]any{"$divide": []any{Serialize(e.Dividend), Serialize(e.Divisor)}}
}

// ModExpr is the $mod operator.
type ModExpr struct {
	Dividend any
	Divisor  any
}

func (e *ModExpr) ToWire() any {
	return map[string]any{"$mod": []any{Serialize(e.Dividend), Serialize(e.Divisor)}}
}

// AbsExpr is the $abs operator.
type AbsExpr struct {
	Value any
}

func (e *AbsExpr) ToWire() any {
	return map[string]any{"$abs": Serialize(e.Value)}
}

// CeilExpr is the $ceil operator.
type CeilExpr struct {
	Input any
}

func (e *CeilExpr) ToWire() any {
	return map[string]any{"$ceil": Serialize(e.Input)}
}

// FloorExpr is the $floor operator.
type FloorExpr struct {
	Input any
}

func (e *FloorExpr) ToWire() any {
	return map[string]any{"$floor": Serialize(e.Input)}
}

// RoundExpr is the $round operator. Place is the decimal place to round to
// and may be negative.
type RoundExpr struct {
	Input any
	Place int
}

func (e *RoundExpr) ToWire() any {
	return map[string]any{"$round": []any{Serialize(e.Input), e.Place}}
}

// PowExpr is the $pow operator.
type PowExpr struct {
	Base     any
	Exponent any
}

func (e *PowExpr) ToWire() any {
	return map[string]any{"$pow": []any{Serialize(e.Base), Serialize(e.Exponent)}}
}
