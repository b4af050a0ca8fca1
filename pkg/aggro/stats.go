package aggro

import "strings"

// Stats summarises the shape of a pipeline: how many stages it holds
// (sub-pipeline stages included), how often each operator occurs anywhere in
// the tree and how deeply values nest.
type Stats struct {
	Stages    int
	Operators map[string]int
	MaxDepth  int
}

// Inspect walks the pipeline's wire form and collects Stats. It never mutates
// the pipeline.
func Inspect(p *Pipeline) Stats {
	st := Stats{Operators: map[string]int{}}

	for _, wire := range p.ToWireList() {
		st.Stages++
		st.collect(wire, 1)
	}

	return st
}

func (st *Stats) collect(value any, depth int) {
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}

	switch val := value.(type) {
	case map[string]any:
		for key, child := range val {
			if strings.HasPrefix(key, "$") {
				st.Operators[key]++
			}

			// Sub-pipelines hang off "pipeline" fields ($lookup,
			// $unionWith) and off every named output of $facet.
			if key == "pipeline" || key == "$facet" {
				st.countSubStages(child)
			}

			st.collect(child, depth+1)
		}
	case []any:
		for _, child := range val {
			st.collect(child, depth+1)
		}
	}
}

func (st *Stats) countSubStages(v any) {
	switch val := v.(type) {
	case []any:
		st.Stages += len(val)
	case map[string]any:
		for _, sub := range val {
			if list, ok := sub.([]any); ok {
				st.Stages += len(list)
			}
		}
	}
}
