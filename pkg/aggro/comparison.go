package aggro

// Comparison operators. Each serialises to {"$op": [left, right]} and is
// usually built through the Field comparison methods; the NewXxx constructors
// exist for callers assembling nodes from dynamic input and validate that both
// operands were supplied.

// EqExpr is the $eq operator.
type EqExpr struct {
	Left  any
	Right any
}

// ToWire serialises to {"$eq": [left, right]}.
func (e *EqExpr) ToWire() any {
	return map[string]any{"$eq": []any{Serialize(e.Left), Serialize(e.Right)}}
}

// NewEq builds an $eq node, failing if either operand is missing.
func NewEq(left, right any) (*EqExpr, error) {
	if err := requireOperands(left, right); err != nil {
		return nil, err
	}

	return &EqExpr{Left: left, Right: right}, nil
}

// NeExpr is the $ne operator.
type NeExpr struct {
	Left  any
	Right any
}

// ToWire serialises to {"$ne": [left, right]}.
func (e *NeExpr) ToWire() any {
	return map[string]any{"$ne": []any{Serialize(e.Left), Serialize(e.Right)}}
}

// NewNe builds a $ne node, failing if either operand is missing.
func NewNe(left, right any) (*NeExpr, error) {
	if err := requireOperands(left, right); err != nil {
		return nil, err
	}

	return &NeExpr{Left: left, Right: right}, nil
}

// GtExpr is the $gt operator.
type GtExpr struct {
	Left  any
	Right any
}

// ToWire serialises to {"$gt": [left, right]}.
func (e *GtExpr) ToWire() any {
	return map[string]any{"$gt": []any{Serialize(e.Left), Serialize(e.Right)}}
}

// NewGt builds a $gt node, failing if either operand is missing.
func NewGt(left, right any) (*GtExpr, error) {
	if err := requireOperands(left, right); err != nil {
		return nil, err
	}

	return &GtExpr{Left: left, Right: right}, nil
}

// GteExpr is the $gte operator.
type GteExpr struct {
	Left  any
	Right any
}

// ToWire serialises to {"$gte": [left, right]}.
func (e *GteExpr) ToWire() any {
	return map[string]any{"$gte": []any{Serialize(e.Left), Serialize(e.Right)}}
}

// NewGte builds a $gte node, failing if either operand is missing.
func NewGte(left, right any) (*GteExpr, error) {
	if err := requireOperands(left, right); err != nil {
		return nil, err
	}

	return &GteExpr{Left: left, Right: right}, nil
}

// LtExpr is the $lt operator.
type LtExpr struct {
	Left  any
	Right any
}

// ToWire serialises to {"$lt": [left, right]}.
func (e *LtExpr) ToWire() any {
	return map[string]any{"$lt": []any{Serialize(e.Left), Serialize(e.Right)}}
}

// NewLt builds a $lt node, failing if either operand is missing.
func NewLt(left, right any) (*LtExpr, error) {
	if err := requireOperands(left, right); err != nil {
		return nil, err
	}

	return &LtExpr{Left: left, Right: right}, nil
}

// LteExpr is the $lte operator.
type LteExpr struct {
	Left  any
	Right any
}

// ToWire serialises to {"$lte": [left, right]}.
func (e *LteExpr) ToWire() any {
	return map[string]any{"$lte": []any{Serialize(e.Left), Serialize(e.Right)}}
}

// NewLte builds a $lte node, failing if either operand is missing.
func NewLte(left, right any) (*LteExpr, error) {
	if err := requireOperands(left, right); err != nil {
		return nil, err
	}

	return &LteExpr{Left: left, Right: right}, nil
}

// CmpExpr is the $cmp operator. It compares two values and yields -1, 0 or 1.
type CmpExpr struct {
	Left  any
	Right any
}

// ToWire serialises to {"$cmp": [left, right]}.
func (e *CmpExpr) ToWire() any {
	return map[string]any{"$cmp": []any{Serialize(e.Left), Serialize(e.Right)}}
}

// NewCmp builds a $cmp node, failing if either operand is missing.
func NewCmp(left, right any) (*CmpExpr, error) {
	if err := requireOperands(left, right); err != nil {
		return nil, err
	}

	return &CmpExpr{Left: left, Right: right}, nil
}

func requireOperands(left, right any) error {
	if left == nil {
		return missingOperand("left")
	}
	if right == nil {
		return missingOperand("right")
	}

	return nil
}
