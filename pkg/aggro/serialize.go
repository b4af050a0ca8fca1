package aggro

import (
	"reflect"
)

// Wireable is implemented by every value that can produce its own wire form.
// Both expression operators and pipeline stages satisfy it.
type Wireable interface {
	ToWire() any
}

// Serialize lowers an arbitrary operand value into its wire form.
//
// Dispatch order: self-serialising values first, then field references, then
// slices and maps element-wise, then everything else unchanged. Scalars and
// opaque driver types (timestamps, decimals, object ids) fall through the last
// case untouched.
//
// Serialize is the single recursion point of the package. It is pure and
// idempotent: running it over an already serialised tree returns an equal tree.
func Serialize(value any) any {
	switch val := value.(type) {
	case Wireable:
		return val.ToWire()
	case Field:
		return string(val)
	case nil:
		return nil
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Serialize(rv.Index(i).Interface())
		}

		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Serialize(iter.Value().Interface())
		}

		return out
	default:
		return value
	}
}

// serializeAll maps Serialize over a list of operands.
func serializeAll(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = Serialize(v)
	}

	return out
}
