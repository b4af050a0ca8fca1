package aggro

import "strings"

// Field is a reference to a document field, stored in its normalised form with
// a leading "$". It is a plain string value, so two references to the same
// path compare equal and a Field can be used as a map key.
type Field string

// F creates a field reference. A single "$" is prepended unless the path
// already carries one; a path that starts with "$$" names an aggregation
// variable and is kept verbatim. Normalisation never removes markers, so F is
// idempotent.
//
//	F("age")     // "$age"
//	F("$age")    // "$age"
//	F("$$total") // "$$total"
func F(path string) Field {
	if strings.HasPrefix(path, "$") {
		return Field(path)
	}

	return Field("$" + path)
}

// Var creates a reference to the aggregation variable with the given name,
// such as "NOW" or a variable bound by $let or a $lookup let document.
func Var(name string) Field {
	return Field("$$" + strings.TrimPrefix(name, "$$"))
}

// String returns the normalised path, including the leading marker.
func (f Field) String() string {
	return string(f)
}

// Eq builds the comparison {"$eq": [field, value]}.
func (f Field) Eq(value any) *EqExpr {
	return &EqExpr{Left: f, Right: value}
}

// Ne builds the comparison {"$ne": [field, value]}.
func (f Field) Ne(value any) *NeExpr {
	return &NeExpr{Left: f, Right: value}
}

// Gt builds the comparison {"$gt": [field, value]}.
func (f Field) Gt(value any) *GtExpr {
	return &GtExpr{Left: f, Right: value}
}

// Gte builds the comparison {"$gte": [field, value]}.
func (f Field) Gte(value any) *GteExpr {
	return &GteExpr{Left: f, Right: value}
}

// Lt builds the comparison {"$lt": [field, value]}.
func (f Field) Lt(value any) *LtExpr {
	return &LtExpr{Left: f, Right: value}
}

// Lte builds the comparison {"$lte": [field, value]}.
func (f Field) Lte(value any) *LteExpr {
	return &LteExpr{Left: f, Right: value}
}
