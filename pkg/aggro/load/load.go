// Package load builds pipelines from already-materialised stage documents,
// as found in configuration files or stored query definitions. Unlike the
// typed constructors in pkg/aggro, everything here is checked at runtime:
// unknown stage names and unknown stage fields are rejected, and required
// fields must be present.
package load

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-aggro/pkg/aggro"
)

type decoder func(body any) (aggro.Stage, error)

var decoders = map[string]decoder{
	"$match":       decodeMatch,
	"$project":     decodeProject,
	"$group":       decodeGroup,
	"$sort":        decodeSort,
	"$limit":       decodeLimit,
	"$skip":        decodeSkip,
	"$count":       decodeCount,
	"$sample":      decodeSample,
	"$unwind":      decodeUnwind,
	"$addFields":   decodeAddFields,
	"$set":         decodeSet,
	"$unset":       decodeUnset,
	"$replaceRoot": decodeReplaceRoot,
	"$replaceWith": decodeReplaceWith,
	"$sortByCount": decodeSortByCount,
	"$lookup":      decodeLookup,
	"$unionWith":   decodeUnionWith,
	"$facet":       decodeFacet,
	"$out":         decodeOut,
	"$merge":       decodeMerge,
}

// FromDocuments builds a pipeline from a list of single-key stage documents.
// The documents are expected to already be in wire form; bodies of filter and
// expression fields are carried through as-is.
func FromDocuments(docs []map[string]any) (*aggro.Pipeline, error) {
	pipe := aggro.New()

	for i, doc := range docs {
		stage, err := decodeStage(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", i)
		}

		pipe.Append(stage)
	}

	return pipe, nil
}

func decodeStage(doc map[string]any) (aggro.Stage, error) {
	if len(doc) != 1 {
		return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "stage document must have exactly one key, got %d", len(doc))
	}

	for name, body := range doc {
		dec, ok := decoders[name]
		if !ok {
			return nil, errors.Wrap(aggro.ErrUnknownField, name)
		}

		stage, err := dec(body)
		if err != nil {
			return nil, errors.Wrap(err, name)
		}

		return stage, nil
	}

	return nil, nil // unreachable
}

func decodeMatch(body any) (aggro.Stage, error) {
	query, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	return &aggro.Match{Query: query}, nil
}

func decodeProject(body any) (aggro.Stage, error) {
	fields, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	return &aggro.Project{Fields: fields}, nil
}

func decodeGroup(body any) (aggro.Stage, error) {
	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	id, ok := doc["_id"]
	if !ok {
		return nil, errors.Wrap(aggro.ErrMissingOperand, "_id")
	}

	accumulators := make(map[string]any, len(doc)-1)
	for key, v := range doc {
		if key != "_id" {
			accumulators[key] = v
		}
	}

	return &aggro.Group{ID: id, Accumulators: accumulators}, nil
}

func decodeSort(body any) (aggro.Stage, error) {
	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]int, len(doc))
	for name, v := range doc {
		dir, ok := asInt(v)
		if !ok {
			return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "%s: %v", name, v)
		}
		fields[name] = dir
	}

	return aggro.NewSort(fields)
}

func decodeLimit(body any) (aggro.Stage, error) {
	count, ok := asInt(body)
	if !ok {
		return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "count: %v", body)
	}

	return aggro.NewLimit(count)
}

func decodeSkip(body any) (aggro.Stage, error) {
	count, ok := asInt(body)
	if !ok {
		return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "count: %v", body)
	}

	return aggro.NewSkip(count)
}

func decodeCount(body any) (aggro.Stage, error) {
	field, ok := body.(string)
	if !ok || field == "" {
		return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "field: %v", body)
	}

	return &aggro.Count{Field: field}, nil
}

func decodeSample(body any) (aggro.Stage, error) {
	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	err = rejectUnknown(doc, "size")
	if err != nil {
		return nil, err
	}

	raw, ok := doc["size"]
	if !ok {
		return nil, errors.Wrap(aggro.ErrMissingOperand, "size")
	}

	size, ok := asInt(raw)
	if !ok {
		return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "size: %v", raw)
	}

	return aggro.NewSample(size)
}

func decodeUnwind(body any) (aggro.Stage, error) {
	if path, ok := body.(string); ok {
		return &aggro.Unwind{Path: path}, nil
	}

	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	err = rejectUnknown(doc, "path", "includeArrayIndex", "preserveNullAndEmptyArrays")
	if err != nil {
		return nil, err
	}

	path, ok := doc["path"].(string)
	if !ok || path == "" {
		return nil, errors.Wrap(aggro.ErrMissingOperand, "path")
	}

	stage := &aggro.Unwind{Path: path}
	if idx, ok := doc["includeArrayIndex"].(string); ok {
		stage.IncludeArrayIndex = idx
	}
	if preserve, ok := doc["preserveNullAndEmptyArrays"].(bool); ok {
		stage.PreserveNullAndEmpty = preserve
	}

	return stage, nil
}

func decodeAddFields(body any) (aggro.Stage, error) {
	fields, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	return &aggro.AddFields{Fields: fields}, nil
}

func decodeSet(body any) (aggro.Stage, error) {
	fields, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	return &aggro.Set{Fields: fields}, nil
}

func decodeUnset(body any) (aggro.Stage, error) {
	switch val := body.(type) {
	case string:
		return &aggro.Unset{Fields: []string{val}}, nil
	case []any:
		fields := make([]string, len(val))
		for i, f := range val {
			s, ok := f.(string)
			if !ok {
				return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "fields[%d]: %v", i, f)
			}
			fields[i] = s
		}

		return &aggro.Unset{Fields: fields}, nil
	default:
		return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "fields: %v", body)
	}
}

func decodeReplaceRoot(body any) (aggro.Stage, error) {
	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	err = rejectUnknown(doc, "newRoot")
	if err != nil {
		return nil, err
	}

	newRoot, ok := doc["newRoot"]
	if !ok {
		return nil, errors.Wrap(aggro.ErrMissingOperand, "newRoot")
	}

	return &aggro.ReplaceRoot{NewRoot: newRoot}, nil
}

func decodeReplaceWith(body any) (aggro.Stage, error) {
	if body == nil {
		return nil, errors.Wrap(aggro.ErrMissingOperand, "expression")
	}

	return &aggro.ReplaceWith{Expression: body}, nil
}

func decodeSortByCount(body any) (aggro.Stage, error) {
	field, ok := body.(string)
	if !ok || field == "" {
		return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "field: %v", body)
	}

	return &aggro.SortByCount{Field: field}, nil
}

func decodeLookup(body any) (aggro.Stage, error) {
	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	err = rejectUnknown(doc, "from", "localField", "foreignField", "let", "pipeline", "as")
	if err != nil {
		return nil, err
	}

	from, _ := doc["from"].(string)
	as, _ := doc["as"].(string)

	stage, err := aggro.NewLookup(from, as)
	if err != nil {
		return nil, err
	}

	stage.LocalField, _ = doc["localField"].(string)
	stage.ForeignField, _ = doc["foreignField"].(string)
	if let, ok := doc["let"].(map[string]any); ok {
		stage.Let = let
	}
	if sub, ok := doc["pipeline"]; ok {
		stage.Pipeline = sub
	}

	return stage, nil
}

func decodeUnionWith(body any) (aggro.Stage, error) {
	if coll, ok := body.(string); ok {
		return &aggro.UnionWith{Collection: coll}, nil
	}

	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	err = rejectUnknown(doc, "coll", "pipeline")
	if err != nil {
		return nil, err
	}

	coll, ok := doc["coll"].(string)
	if !ok || coll == "" {
		return nil, errors.Wrap(aggro.ErrMissingOperand, "coll")
	}

	return &aggro.UnionWith{Collection: coll, Pipeline: doc["pipeline"]}, nil
}

func decodeFacet(body any) (aggro.Stage, error) {
	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	pipelines := make(map[string]any, len(doc))
	for name, sub := range doc {
		list, ok := sub.([]any)
		if !ok {
			return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "%s: %v", name, sub)
		}
		pipelines[name] = list
	}

	return &aggro.Facet{Pipelines: pipelines}, nil
}

func decodeOut(body any) (aggro.Stage, error) {
	if coll, ok := body.(string); ok {
		return &aggro.Out{Collection: coll}, nil
	}

	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	err = rejectUnknown(doc, "db", "coll")
	if err != nil {
		return nil, err
	}

	coll, ok := doc["coll"].(string)
	if !ok || coll == "" {
		return nil, errors.Wrap(aggro.ErrMissingOperand, "coll")
	}
	db, _ := doc["db"].(string)

	return &aggro.Out{Collection: coll, DB: db}, nil
}

func decodeMerge(body any) (aggro.Stage, error) {
	if coll, ok := body.(string); ok {
		return &aggro.Merge{Into: coll}, nil
	}

	doc, err := asDocument(body)
	if err != nil {
		return nil, err
	}

	err = rejectUnknown(doc, "into", "on", "whenMatched", "whenNotMatched")
	if err != nil {
		return nil, err
	}

	stage, err := aggro.NewMerge(doc["into"])
	if err != nil {
		return nil, err
	}

	stage.On = doc["on"]
	stage.WhenMatched, _ = doc["whenMatched"].(string)
	stage.WhenNotMatched, _ = doc["whenNotMatched"].(string)

	return stage, nil
}

func asDocument(body any) (map[string]any, error) {
	doc, ok := body.(map[string]any)
	if !ok {
		return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "body: %v", body)
	}

	return doc, nil
}

// rejectUnknown fails with ErrUnknownField when the document carries a field
// outside the allowed set.
func rejectUnknown(doc map[string]any, allowed ...string) error {
	for key := range doc {
		known := false
		for _, name := range allowed {
			if key == name {
				known = true

				break
			}
		}

		if !known {
			return errors.Wrap(aggro.ErrUnknownField, key)
		}
	}

	return nil
}

// asInt accepts the integer encodings produced by the YAML and JSON parsers.
func asInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		if val == float64(int(val)) {
			return int(val), true
		}
	}

	return 0, false
}
