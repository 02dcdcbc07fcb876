package jsonschema

import (
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// Equal reports whether s and o are structurally identical: same keywords
// with deeply equal values. Keyword order is ignored, list order is not.
// Numbers compare by value regardless of their Go type.
func (s *Schema) Equal(o *Schema) bool {
	if s.Len() != o.Len() {
		return false
	}
	eq := true
	s.Range(func(k string, v any) bool {
		ov, ok := o.Get(k)
		eq = ok && equalValue(v, ov)
		return eq
	})
	return eq
}

// Without returns a shallow copy of s lacking the given keywords.
func (s *Schema) Without(keys ...string) *Schema {
	out := New()
	s.Range(func(k string, v any) bool {
		for _, drop := range keys {
			if k == drop {
				return true
			}
		}
		out.Set(k, v)
		return true
	})
	return out
}

func equalValue(a, b any) bool {
	if as, ok := a.(*Schema); ok {
		bs, ok := b.(*Schema)
		return ok && as.Equal(bs)
	}
	if al, ok := asList(a); ok {
		bl, ok := asList(b)
		if !ok || len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !equalValue(al[i], bl[i]) {
				return false
			}
		}
		return true
	}
	if af, ok := asNumber(a); ok {
		bf, ok := asNumber(b)
		return ok && af == bf
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return false
}

func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, true
	case []*Schema:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, true
	}
	return nil, false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	return 0, false
}
