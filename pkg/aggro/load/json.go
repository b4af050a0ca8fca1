package load

import (
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/askiada/go-aggro/pkg/aggro"
)

// FromJSON builds a pipeline from a JSON array of stage documents.
func FromJSON(data []byte) (*aggro.Pipeline, error) {
	var parser fastjson.Parser

	root, err := parser.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse json pipeline")
	}

	arr, err := root.Array()
	if err != nil {
		return nil, errors.Wrap(err, "pipeline must be a json array")
	}

	docs := make([]map[string]any, 0, len(arr))

	for i, item := range arr {
		doc, ok := fromJSONValue(item).(map[string]any)
		if !ok {
			return nil, errors.Wrapf(aggro.ErrInvalidOperandType, "stage %d is not an object", i)
		}

		docs = append(docs, doc)
	}

	return FromDocuments(docs)
}

// fromJSONValue converts a parsed fastjson value into the plain map/slice/
// scalar tree the decoders work on. Integral numbers come out as int so
// counts and sort directions decode directly.
func fromJSONValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, _ := v.Object()
		out := make(map[string]any, obj.Len())
		obj.Visit(func(key []byte, item *fastjson.Value) {
			out[string(key)] = fromJSONValue(item)
		})

		return out
	case fastjson.TypeArray:
		items, _ := v.Array()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = fromJSONValue(item)
		}

		return out
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		f := v.GetFloat64()
		if f == float64(int(f)) {
			return int(f)
		}

		return f
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
