package aggro

// Accumulator operators, used as values of the Group stage and inside
// $setWindowFields output documents.

// SumExpr is the $sum accumulator.
type SumExpr struct {
	Input any
}

func (e *SumExpr) ToWire() any {
	return map[string]any{"$sum": Serialize(e.Input)}
}

// Sum builds a $sum accumulator. Sum(1) is the usual document counter.
func Sum(input any) *SumExpr {
	return &SumExpr{Input: input}
}

// AvgExpr is the $avg accumulator.
type AvgExpr struct {
	Input any
}

func (e *AvgExpr) ToWire() any {
	return map[string]any{"$avg": Serialize(e.Input)}
}

// MinExpr is the $min accumulator.
type MinExpr struct {
	Input any
}

func (e *MinExpr) ToWire() any {
	return map[string]any{"$min": Serialize(e.Input)}
}

// MaxExpr is the $max accumulator.
type MaxExpr struct {
	Input any
}

func (e *MaxExpr) ToWire() any {
	return map[string]any{"$max": Serialize(e.Input)}
}

// FirstExpr is the $first accumulator.
type FirstExpr struct {
	Input any
}

func (e *FirstExpr) ToWire() any {
	return map[string]any{"$first": Serialize(e.Input)}
}

// LastExpr is the $last accumulator.
type LastExpr struct {
	Input any
}

func (e *LastExpr) ToWire() any {
	return map[string]any{"$last": Serialize(e.Input)}
}

// PushExpr is the $push accumulator.
type PushExpr struct {
	Input any
}

func (e *PushExpr) ToWire() any {
	return map[string]any{"$push": Serialize(e.Input)}
}

// AddToSetExpr is the $addToSet accumulator.
type AddToSetExpr struct {
	Input any
}

func (e *AddToSetExpr) ToWire() any {
	return map[string]any{"$addToSet": Serialize(e.Input)}
}
