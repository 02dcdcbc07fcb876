package jsonschema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Keywords emitted by the converter.
const (
	KeyType                 = "type"
	KeyProperties           = "properties"
	KeyRequired             = "required"
	KeyItems                = "items"
	KeyEnum                 = "enum"
	KeyAnyOf                = "anyOf"
	KeyAllOf                = "allOf"
	KeyNot                  = "not"
	KeyPattern              = "pattern"
	KeyMinimum              = "minimum"
	KeyMaximum              = "maximum"
	KeyExclusiveMinimum     = "exclusiveMinimum"
	KeyExclusiveMaximum     = "exclusiveMaximum"
	KeyMinLength            = "minLength"
	KeyMaxLength            = "maxLength"
	KeyFormat               = "format"
	KeyNullable             = "nullable"
	KeyDescription          = "description"
	KeyDefault              = "default"
	KeyAdditionalProperties = "additionalProperties"
)

// Type names.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// shapeKeys are the keywords that give a fragment an explicit shape.
var shapeKeys = [...]string{KeyType, KeyAnyOf, KeyAllOf, KeyEnum, KeyNot}

// Schema is an ordered schema document fragment. Keys keep insertion order,
// which is also the order used when encoding.
//
// Values are limited to JSON-compatible data: nil, bool, string, numbers,
// []string, []any, []*Schema and *Schema. The "properties" keyword holds a
// *Schema whose values are the per-property fragments.
//
// The zero value is an empty fragment ready to use.
type Schema struct {
	m *orderedmap.OrderedMap[string, any]
}

// New returns an empty fragment.
func New() *Schema {
	return &Schema{m: orderedmap.New[string, any]()}
}

// Typed returns a fragment with only the "type" keyword set.
func Typed(typ string) *Schema { return New().Set(KeyType, typ) }

// Permissive returns the fragment that accepts any value.
func Permissive() *Schema {
	return New().Set(KeyType, TypeObject).Set(KeyAdditionalProperties, true)
}

// Set stores v under key and returns s for chaining. Re-setting an existing
// key keeps its original position.
func (s *Schema) Set(key string, v any) *Schema {
	if s.m == nil {
		s.m = orderedmap.New[string, any]()
	}
	s.m.Set(key, v)
	return s
}

// Get returns the value stored under key.
func (s *Schema) Get(key string) (any, bool) {
	if s == nil || s.m == nil {
		return nil, false
	}
	return s.m.Get(key)
}

// Has reports whether key is present.
func (s *Schema) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key.
func (s *Schema) Delete(key string) {
	if s.m != nil {
		s.m.Delete(key)
	}
}

// Len returns the number of keywords.
func (s *Schema) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// IsEmpty reports whether the fragment carries no keywords at all.
func (s *Schema) IsEmpty() bool { return s.Len() == 0 }

// Keys returns the keywords in order.
func (s *Schema) Keys() []string {
	if s == nil || s.m == nil {
		return nil
	}
	keys := make([]string, 0, s.m.Len())
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Range calls fn for every keyword in order until fn returns false.
func (s *Schema) Range(fn func(key string, v any) bool) {
	if s == nil || s.m == nil {
		return
	}
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// Schema returns the nested fragment stored under key, if any.
func (s *Schema) Schema(key string) (*Schema, bool) {
	v, ok := s.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Schema)
	return sub, ok
}

// Property returns the fragment of the named property.
func (s *Schema) Property(name string) (*Schema, bool) {
	props, ok := s.Schema(KeyProperties)
	if !ok {
		return nil, false
	}
	return props.Schema(name)
}

// Merge copies every keyword of o into s, overwriting existing keys.
func (s *Schema) Merge(o *Schema) *Schema {
	o.Range(func(k string, v any) bool {
		s.Set(k, v)
		return true
	})
	return s
}

// Overlaps reports whether s and o share at least one keyword.
func (s *Schema) Overlaps(o *Schema) bool {
	shared := false
	o.Range(func(k string, _ any) bool {
		shared = s.Has(k)
		return !shared
	})
	return shared
}

// HasShape reports whether the fragment carries an explicit shape keyword
// (type, anyOf, allOf, enum or not).
func (s *Schema) HasShape() bool {
	for _, k := range shapeKeys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// EnsureType sets "type" to fallback when the fragment has no shape keyword.
func (s *Schema) EnsureType(fallback string) *Schema {
	if !s.HasShape() {
		s.Set(KeyType, fallback)
	}
	return s
}

// Clone returns a deep copy of s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := New()
	s.Range(func(k string, v any) bool {
		out.m.Set(k, cloneValue(v))
		return true
	})
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Schema:
		return t.Clone()
	case []*Schema:
		out := make([]*Schema, len(t))
		for i := range t {
			out[i] = t[i].Clone()
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
