package aggro

// Bucketing and faceting stages.

// Facet is the $facet stage. Pipelines maps output field names to
// sub-pipelines (*Pipeline or materialised wire lists).
type Facet struct {
	Pipelines map[string]any
}

func (s *Facet) ToWire() any {
	body := make(map[string]any, len(s.Pipelines))
	for name, p := range s.Pipelines {
		body[name] = subPipeline(p)
	}

	return map[string]any{"$facet": body}
}

// Bucket is the $bucket stage.
type Bucket struct {
	GroupBy    any
	Boundaries []any
	Default    any
	Output     map[string]any
}

func (s *Bucket) ToWire() any {
	body := map[string]any{
		"groupBy":    Serialize(s.GroupBy),
		"boundaries": serializeAll(s.Boundaries),
	}
	if s.Default != nil {
		body["default"] = s.Default
	}
	if s.Output != nil {
		body["output"] = Serialize(s.Output)
	}

	return map[string]any{"$bucket": body}
}

// NewBucket builds a $bucket stage. At least two boundaries are required to
// form one bucket.
func NewBucket(groupBy any, boundaries []any) (*Bucket, error) {
	if groupBy == nil {
		return nil, missingOperand("groupBy")
	}
	if len(boundaries) < 2 {
		return nil, invalidOperand("boundaries", boundaries)
	}

	return &Bucket{GroupBy: groupBy, Boundaries: boundaries}, nil
}

// BucketAuto is the $bucketAuto stage.
type BucketAuto struct {
	GroupBy     any
	Buckets     int
	Output      map[string]any
	Granularity string
}

func (s *BucketAuto) ToWire() any {
	body := map[string]any{
		"groupBy": Serialize(s.GroupBy),
		"buckets": s.Buckets,
	}
	if s.Output != nil {
		body["output"] = Serialize(s.Output)
	}
	if s.Granularity != "" {
		body["granularity"] = s.Granularity
	}

	return map[string]any{"$bucketAuto": body}
}

// SortByCount is the $sortByCount stage. Its body is a bare field path.
type SortByCount struct {
	Field string
}

func (s *SortByCount) ToWire() any {
	return map[string]any{"$sortByCount": string(F(s.Field))}
}
