package aggro

// Unwind is the $unwind stage. With no options the body is the bare field
// path; setting IncludeArrayIndex or PreserveNullAndEmpty switches to the
// document form.
type Unwind struct {
	Path                 string
	IncludeArrayIndex    string
	PreserveNullAndEmpty bool
}

func (s *Unwind) ToWire() any {
	path := string(F(s.Path))

	if s.IncludeArrayIndex == "" && !s.PreserveNullAndEmpty {
		return map[string]any{"$unwind": path}
	}

	body := map[string]any{"path": path}
	if s.IncludeArrayIndex != "" {
		body["includeArrayIndex"] = s.IncludeArrayIndex
	}
	if s.PreserveNullAndEmpty {
		body["preserveNullAndEmptyArrays"] = true
	}

	return map[string]any{"$unwind": body}
}
