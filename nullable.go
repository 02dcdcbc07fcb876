package oaskema

import (
	js "github.com/reoring/oaskema/jsonschema"
)

// markNullable makes s accept null, using the representation of the
// configured OpenAPI version. s may be modified in place; the returned
// fragment must be used.
func (c *Converter) markNullable(s *js.Schema) *js.Schema {
	if c.opts.Version != OpenAPI31 {
		return s.Set(js.KeyNullable, true)
	}
	marked := false
	if v, ok := s.Get(js.KeyType); ok {
		switch t := v.(type) {
		case string:
			if t != js.TypeNull {
				s.Set(js.KeyType, []any{t, js.TypeNull})
			}
			marked = true
		case []any:
			if !containsValue(t, js.TypeNull) {
				s.Set(js.KeyType, append(append([]any{}, t...), js.TypeNull))
			}
			marked = true
		}
	}
	// an enum rejects null unless it lists it
	if v, ok := s.Get(js.KeyEnum); ok {
		if list, ok := v.([]any); ok {
			if !containsValue(list, nil) {
				s.Set(js.KeyEnum, append(append([]any{}, list...), nil))
			}
			marked = true
		}
	}
	if marked {
		return s
	}
	if s.IsEmpty() {
		return s
	}
	if v, ok := s.Get(js.KeyAnyOf); ok {
		if alts, ok := v.([]*js.Schema); ok {
			if !containsEqual(alts, js.Typed(js.TypeNull)) {
				s.Set(js.KeyAnyOf, append(append([]*js.Schema{}, alts...), js.Typed(js.TypeNull)))
			}
			return s
		}
	}
	return js.New().Set(js.KeyAnyOf, []*js.Schema{s, js.Typed(js.TypeNull)})
}

// stripNullable returns s without its null-acceptance marker and whether a
// marker was found. s itself is not modified.
func (c *Converter) stripNullable(s *js.Schema) (*js.Schema, bool) {
	if c.opts.Version != OpenAPI31 {
		if v, ok := s.Get(js.KeyNullable); ok && v == true {
			return s.Without(js.KeyNullable), true
		}
		return s, false
	}
	out, found := s, false
	if v, ok := s.Get(js.KeyType); ok {
		if list, ok := v.([]any); ok && containsValue(list, js.TypeNull) {
			rest := removeValue(list, js.TypeNull)
			out, found = s.Without(), true
			if len(rest) == 1 {
				out.Set(js.KeyType, rest[0])
			} else {
				out.Set(js.KeyType, rest)
			}
		}
	}
	if v, ok := s.Get(js.KeyEnum); ok {
		if list, ok := v.([]any); ok && containsValue(list, nil) {
			if !found {
				out = s.Without()
			}
			out.Set(js.KeyEnum, removeValue(list, nil))
			found = true
		}
	}
	if found {
		return out, true
	}
	if v, ok := s.Get(js.KeyAnyOf); ok {
		alts, ok := v.([]*js.Schema)
		if !ok || len(alts) < 2 || !alts[len(alts)-1].Equal(js.Typed(js.TypeNull)) {
			return s, false
		}
		rest := alts[:len(alts)-1]
		// {anyOf: [X, {type: null}]} is a wrapped X
		if len(rest) == 1 && s.Len() == 1 {
			return rest[0], true
		}
		return s.Without().Set(js.KeyAnyOf, append([]*js.Schema{}, rest...)), true
	}
	return s, false
}

func containsValue(list []any, v any) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func removeValue(list []any, v any) []any {
	out := make([]any, 0, len(list))
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
