package aggro

// Document transformation stages.

// AddFields is the $addFields stage.
type AddFields struct {
	Fields map[string]any
}

func (s *AddFields) ToWire() any {
	return map[string]any{"$addFields": Serialize(s.Fields)}
}

// Set is the $set stage, an alias for $addFields.
type Set struct {
	Fields map[string]any
}

func (s *Set) ToWire() any {
	return map[string]any{"$set": Serialize(s.Fields)}
}

// Unset is the $unset stage. A single field serialises to a bare string, more
// than one to a list.
type Unset struct {
	Fields []string
}

func (s *Unset) ToWire() any {
	if len(s.Fields) == 1 {
		return map[string]any{"$unset": s.Fields[0]}
	}

	out := make([]any, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f
	}

	return map[string]any{"$unset": out}
}

// ReplaceRoot is the $replaceRoot stage.
type ReplaceRoot struct {
	NewRoot any
}

func (s *ReplaceRoot) ToWire() any {
	return map[string]any{"$replaceRoot": map[string]any{"newRoot": Serialize(s.NewRoot)}}
}

// ReplaceWith is the $replaceWith stage, the shorthand form of $replaceRoot.
type ReplaceWith struct {
	Expression any
}

func (s *ReplaceWith) ToWire() any {
	return map[string]any{"$replaceWith": Serialize(s.Expression)}
}

// Redact is the $redact stage.
type Redact struct {
	Expression any
}

func (s *Redact) ToWire() any {
	return map[string]any{"$redact": Serialize(s.Expression)}
}
