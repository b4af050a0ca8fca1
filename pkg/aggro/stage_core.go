package aggro

// Core stages: the ones almost every pipeline uses.

// Match is the $match stage. Query is a filter document; values may be
// expressions, field references or plain scalars.
type Match struct {
	Query map[string]any
}

// ToWire serialises to {"$match": query}.
func (s *Match) ToWire() any {
	return map[string]any{"$match": Serialize(s.Query)}
}

// Project is the $project stage. Fields maps output names to 1/0 inclusion
// flags or expressions.
type Project struct {
	Fields map[string]any
}

// ToWire serialises to {"$project": fields}.
func (s *Project) ToWire() any {
	return map[string]any{"$project": Serialize(s.Fields)}
}

// Group is the $group stage. ID is the grouping expression ("_id" on the
// wire, nil groups everything into one bucket) and Accumulators maps output
// field names to accumulator expressions.
type Group struct {
	ID           any
	Accumulators map[string]any
}

// ToWire serialises to {"$group": {"_id": id, ...accumulators}}.
func (s *Group) ToWire() any {
	body := map[string]any{"_id": Serialize(s.ID)}
	for name, acc := range s.Accumulators {
		body[name] = Serialize(acc)
	}

	return map[string]any{"$group": body}
}

// Sort directions.
const (
	Asc  = 1
	Desc = -1
)

// Sort is the $sort stage. Fields maps field names to Asc or Desc.
type Sort struct {
	Fields map[string]int
}

// ToWire serialises to {"$sort": fields}.
func (s *Sort) ToWire() any {
	body := make(map[string]any, len(s.Fields))
	for name, dir := range s.Fields {
		body[name] = dir
	}

	return map[string]any{"$sort": body}
}

// NewSort builds a $sort stage, rejecting directions other than Asc/Desc.
func NewSort(fields map[string]int) (*Sort, error) {
	if len(fields) == 0 {
		return nil, missingOperand("fields")
	}

	for name, dir := range fields {
		if dir != Asc && dir != Desc {
			return nil, invalidOperand(name, dir)
		}
	}

	return &Sort{Fields: fields}, nil
}

// Limit is the $limit stage. Its body is a bare integer on the wire.
type Limit struct {
	Count int
}

// ToWire serialises to {"$limit": count}.
func (s *Limit) ToWire() any {
	return map[string]any{"$limit": s.Count}
}

// NewLimit builds a $limit stage, rejecting non-positive counts.
func NewLimit(count int) (*Limit, error) {
	if count <= 0 {
		return nil, invalidOperand("count", count)
	}

	return &Limit{Count: count}, nil
}

// Skip is the $skip stage.
type Skip struct {
	Count int
}

// ToWire serialises to {"$skip": count}.
func (s *Skip) ToWire() any {
	return map[string]any{"$skip": s.Count}
}

// NewSkip builds a $skip stage, rejecting negative counts.
func NewSkip(count int) (*Skip, error) {
	if count < 0 {
		return nil, invalidOperand("count", count)
	}

	return &Skip{Count: count}, nil
}

// Count is the $count stage. Its body is the bare output field name.
type Count struct {
	Field string
}

// ToWire serialises to {"$count": field}.
func (s *Count) ToWire() any {
	return map[string]any{"$count": s.Field}
}

// Sample is the $sample stage.
type Sample struct {
	Size int
}

// ToWire serialises to {"$sample": {"size": size}}.
func (s *Sample) ToWire() any {
	return map[string]any{"$sample": map[string]any{"size": s.Size}}
}

// NewSample builds a $sample stage, rejecting non-positive sizes.
func NewSample(size int) (*Sample, error) {
	if size <= 0 {
		return nil, invalidOperand("size", size)
	}

	return &Sample{Size: size}, nil
}
