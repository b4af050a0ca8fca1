package aggro

// Stages that combine data from several collections.

// Lookup is the $lookup stage. The classic form uses LocalField/ForeignField;
// the expressive form uses Let and Pipeline. Pipeline accepts a *Pipeline or
// an already-materialised wire list.
type Lookup struct {
	From         string
	LocalField   string
	ForeignField string
	Let          map[string]any
	Pipeline     any
	As           string
}

// ToWire serialises to {"$lookup": {...}} with only the populated fields.
func (s *Lookup) ToWire() any {
	body := map[string]any{
		"from": s.From,
		"as":   s.As,
	}

	if s.LocalField != "" {
		body["localField"] = s.LocalField
	}
	if s.ForeignField != "" {
		body["foreignField"] = s.ForeignField
	}
	if s.Let != nil {
		body["let"] = Serialize(s.Let)
	}
	if s.Pipeline != nil {
		body["pipeline"] = subPipeline(s.Pipeline)
	}

	return map[string]any{"$lookup": body}
}

// NewLookup builds a $lookup stage, failing when from or as is missing.
func NewLookup(from, as string) (*Lookup, error) {
	if from == "" {
		return nil, missingOperand("from")
	}
	if as == "" {
		return nil, missingOperand("as")
	}

	return &Lookup{From: from, As: as}, nil
}

// UnionWith is the $unionWith stage. Without a pipeline the body is the bare
// collection name.
type UnionWith struct {
	Collection string
	Pipeline   any
}

// ToWire serialises to {"$unionWith": coll} or the document form.
func (s *UnionWith) ToWire() any {
	if s.Pipeline == nil {
		return map[string]any{"$unionWith": s.Collection}
	}

	return map[string]any{"$unionWith": map[string]any{
		"coll":     s.Collection,
		"pipeline": subPipeline(s.Pipeline),
	}}
}

// GraphLookup is the $graphLookup stage.
type GraphLookup struct {
	From                    string
	StartWith               any
	ConnectFromField        string
	ConnectToField          string
	As                      string
	MaxDepth                *int
	DepthField              string
	RestrictSearchWithMatch map[string]any
}

// ToWire serialises to {"$graphLookup": {...}} with only the populated
// optional fields.
func (s *GraphLookup) ToWire() any {
	body := map[string]any{
		"from":             s.From,
		"startWith":        Serialize(s.StartWith),
		"connectFromField": s.ConnectFromField,
		"connectToField":   s.ConnectToField,
		"as":               s.As,
	}

	if s.MaxDepth != nil {
		body["maxDepth"] = *s.MaxDepth
	}
	if s.DepthField != "" {
		body["depthField"] = s.DepthField
	}
	if s.RestrictSearchWithMatch != nil {
		body["restrictSearchWithMatch"] = Serialize(s.RestrictSearchWithMatch)
	}

	return map[string]any{"$graphLookup": body}
}
