package aggro

// Output stages.

// Out is the $out stage. With a DB the body is the document form, otherwise
// the bare collection name.
type Out struct {
	Collection string
	DB         string
}

func (s *Out) ToWire() any {
	if s.DB != "" {
		return map[string]any{"$out": map[string]any{"db": s.DB, "coll": s.Collection}}
	}

	return map[string]any{"$out": s.Collection}
}

// Merge is the $merge stage. Into is required; the remaining fields keep the
// server defaults when zero.
type Merge struct {
	Into           any
	On             any
	WhenMatched    string
	WhenNotMatched string
}

func (s *Merge) ToWire() any {
	body := map[string]any{"into": Serialize(s.Into)}
	if s.On != nil {
		body["on"] = Serialize(s.On)
	}
	if s.WhenMatched != "" {
		body["whenMatched"] = s.WhenMatched
	}
	if s.WhenNotMatched != "" {
		body["whenNotMatched"] = s.WhenNotMatched
	}

	return map[string]any{"$merge": body}
}

// NewMerge builds a $merge stage, failing when into is missing.
func NewMerge(into any) (*Merge, error) {
	if into == nil {
		return nil, missingOperand("into")
	}

	return &Merge{Into: into}, nil
}
