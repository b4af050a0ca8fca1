package aggro

import (
	"iter"
)

// Pipeline is an ordered sequence of aggregation stages. The zero value is
// usable; New is a convenience for seeding it with stages. A Pipeline owns
// its sequence exclusively and is mutable through Append only.
//
// A Pipeline is not safe for concurrent mutation; callers sharing one across
// goroutines must synchronise externally.
type Pipeline struct {
	stages []Stage
}

// New creates a new pipeline holding the given stages in order.
func New(stages ...Stage) *Pipeline {
	pipe := &Pipeline{}
	for _, s := range stages {
		pipe.Append(s)
	}

	return pipe
}

// Append adds a stage to the end of the pipeline and returns the pipeline for
// chaining. The stage must not be mutated by the caller afterwards.
func (p *Pipeline) Append(stage Stage) *Pipeline {
	p.stages = append(p.stages, stage)

	return p
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// At returns the stage at the given index. Negative indices resolve from the
// end, so At(-1) is the last stage. Any index outside the valid range fails
// with ErrIndexOutOfRange.
func (p *Pipeline) At(index int) (Stage, error) {
	resolved := index
	if resolved < 0 {
		resolved += len(p.stages)
	}

	if resolved < 0 || resolved >= len(p.stages) {
		return nil, indexOutOfRange(index, len(p.stages))
	}

	return p.stages[resolved], nil
}

// ToWireList serialises every stage in order. Each call builds a fresh list,
// so results of earlier calls are unaffected by later appends.
func (p *Pipeline) ToWireList() []any {
	out := make([]any, len(p.stages))
	for i, s := range p.stages {
		out[i] = s.ToWire()
	}

	return out
}

// Wire returns a lazy sequence of the stages' wire forms. The sequence is
// restartable: every range over it starts from the first stage again.
func (p *Pipeline) Wire() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, s := range p.stages {
			if !yield(s.ToWire()) {
				return
			}
		}
	}
}
