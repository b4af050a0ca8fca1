package aggro

// Stage is implemented by every aggregation pipeline stage. A stage serialises
// to a single-key document keyed by its wire name; the body shape is fixed per
// stage.
type Stage interface {
	Wireable
}

// subPipeline normalises a stage field that holds either a *Pipeline or an
// already-materialised wire list. A Pipeline is asked for its list; anything
// else is serialised element-wise as-is.
func subPipeline(v any) any {
	if p, ok := v.(*Pipeline); ok {
		return p.ToWireList()
	}

	return Serialize(v)
}
