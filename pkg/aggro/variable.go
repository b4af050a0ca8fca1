package aggro

// Variable and literal operators.

// LetExpr is the $let operator. Vars binds variable names to expressions and
// In is evaluated with those bindings in scope, referenced as "$$name".
type LetExpr struct {
	Vars map[string]any
	In   any
}

func (e *LetExpr) ToWire() any {
	vars := make(map[string]any, len(e.Vars))
	for name, v := range e.Vars {
		vars[name] = Serialize(v)
	}

	return map[string]any{"$let": map[string]any{
		"vars": vars,
		"in":   Serialize(e.In),
	}}
}

// NewLet builds a $let node, failing when the in expression is missing.
func NewLet(vars map[string]any, in any) (*LetExpr, error) {
	if in == nil {
		return nil, missingOperand("in")
	}

	return &LetExpr{Vars: vars, In: in}, nil
}

// LiteralExpr is the $literal operator. The value is emitted without any
// serialisation, so "$field" stays a plain string instead of becoming a
// field reference.
type LiteralExpr struct {
	Value any
}

func (e *LiteralExpr) ToWire() any {
	return map[string]any{"$literal": e.Value}
}

// RandExpr is the $rand operator.
type RandExpr struct{}

func (RandExpr) ToWire() any {
	return map[string]any{"$rand": map[string]any{}}
}
