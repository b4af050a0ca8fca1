package aggro

// Expr is implemented by every expression operator. An Expr is an immutable
// value; its only behaviour is producing its wire form.
type Expr interface {
	Wireable
}

// AndExpr is the $and operator. Conditions may be expressions, field
// references or plain documents.
type AndExpr struct {
	Conditions []any
}

// ToWire serialises to {"$and": [...]}.
func (e *AndExpr) ToWire() any {
	return map[string]any{"$and": serializeAll(e.Conditions)}
}

// OrExpr is the $or operator.
type OrExpr struct {
	Conditions []any
}

// ToWire serialises to {"$or": [...]}.
func (e *OrExpr) ToWire() any {
	return map[string]any{"$or": serializeAll(e.Conditions)}
}

// NotExpr is the $not operator. It holds exactly one condition.
type NotExpr struct {
	Condition any
}

// ToWire serialises to {"$not": <condition>}.
func (e *NotExpr) ToWire() any {
	return map[string]any{"$not": Serialize(e.Condition)}
}

// And combines conditions with $and. Any argument that is itself an *AndExpr
// has its conditions spliced into the new node instead of being nested, so
// chained combinations collapse into a single flat list. Arguments are never
// mutated; And always builds a fresh node.
//
// An empty argument list is legal and produces {"$and": []}; whether that is
// meaningful is left to the consumer of the pipeline.
func And(conditions ...any) *AndExpr {
	flat := make([]any, 0, len(conditions))

	for _, cond := range conditions {
		if and, ok := cond.(*AndExpr); ok {
			flat = append(flat, and.Conditions...)

			continue
		}

		flat = append(flat, cond)
	}

	return &AndExpr{Conditions: flat}
}

// Or combines conditions with $or, flattening nested *OrExpr arguments the
// same way And does.
func Or(conditions ...any) *OrExpr {
	flat := make([]any, 0, len(conditions))

	for _, cond := range conditions {
		if or, ok := cond.(*OrExpr); ok {
			flat = append(flat, or.Conditions...)

			continue
		}

		flat = append(flat, cond)
	}

	return &OrExpr{Conditions: flat}
}

// Not negates a condition with $not. The condition is wrapped unchanged:
// Not never flattens and Not(Not(x)) keeps both wrappers rather than
// cancelling them.
func Not(condition any) *NotExpr {
	return &NotExpr{Condition: condition}
}
