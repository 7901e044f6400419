package opts

import (
	"fmt"
	"slices"
)

// Value is an optional flag argument. The zero Value is absent.
type Value struct {
	s  string
	ok bool
}

// Of returns a present Value.
func Of(s string) Value {
	return Value{s: s, ok: true}
}

// Present reports whether a value was supplied.
func (v Value) Present() bool {
	return v.ok
}

// String returns the value text, or "" when absent.
func (v Value) String() string {
	return v.s
}

// Values maps option labels to requested values for bulk loading.
//
// Accepted value types:
//
//   - false: the option is explicitly disabled and skipped
//   - nil, true: a bare flag with no value
//   - string, fmt.Stringer: the value as is
//   - anything else: formatted with fmt.Sprint (e.g. depth: 1)
type Values map[string]any

// Keys returns the labels in sorted order.
func (vs Values) Keys() []string {
	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Merge returns a new Values holding vs overlaid by each of others in turn.
// Nil inputs are ignored.
func (vs Values) Merge(others ...Values) Values {
	merged := make(Values, len(vs))
	for k, v := range vs {
		merged[k] = v
	}
	for _, o := range others {
		for k, v := range o {
			merged[k] = v
		}
	}
	return merged
}

// toValue converts a mapping value. The second result is false when the
// entry must be skipped.
func toValue(raw any) (Value, bool) {
	switch v := raw.(type) {
	case nil:
		return Value{}, true
	case bool:
		if !v {
			return Value{}, false
		}
		return Value{}, true
	case Value:
		return v, true
	case string:
		return Of(v), true
	case fmt.Stringer:
		return Of(v.String()), true
	default:
		return Of(fmt.Sprint(v)), true
	}
}
