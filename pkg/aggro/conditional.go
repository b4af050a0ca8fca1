package aggro

// Conditional operators.

// CondExpr is the $cond operator.
type CondExpr struct {
	If   any
	Then any
	Else any
}

func (e *CondExpr) ToWire() any {
	return map[string]any{"$cond": map[string]any{
		"if":   Serialize(e.If),
		"then": Serialize(e.Then),
		"else": Serialize(e.Else),
	}}
}

// NewCond builds a $cond node, failing when any of the three branches is
// missing.
func NewCond(ifExpr, then, elseExpr any) (*CondExpr, error) {
	if ifExpr == nil {
		return nil, missingOperand("if")
	}
	if then == nil {
		return nil, missingOperand("then")
	}
	if elseExpr == nil {
		return nil, missingOperand("else")
	}

	return &CondExpr{If: ifExpr, Then: then, Else: elseExpr}, nil
}

// IfNullExpr is the $ifNull operator.
type IfNullExpr struct {
	Input       any
	Replacement any
}

func (e *IfNullExpr) ToWire() any {
	return map[string]any{"$ifNull": []any{Serialize(e.Input), Serialize(e.Replacement)}}
}

// SwitchBranch is a single branch of a $switch expression.
type SwitchBranch struct {
	Case any
	Then any
}

// SwitchExpr is the $switch operator. Default is optional.
type SwitchExpr struct {
	Branches []SwitchBranch
	Default  any
}

func (e *SwitchExpr) ToWire() any {
	branches := make([]any, len(e.Branches))
	for i, b := range e.Branches {
		branches[i] = map[string]any{
			"case": Serialize(b.Case),
			"then": Serialize(b.Then),
		}
	}

	body := map[string]any{"branches": branches}
	if e.Default != nil {
		body["default"] = Serialize(e.Default)
	}

	return map[string]any{"$switch": body}
}
