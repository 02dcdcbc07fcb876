package oaskema

import (
	"reflect"
	"strings"
	"time"

	js "github.com/reoring/oaskema/jsonschema"
)

// TypeResolver reports the input type a callable validator accepts.
type TypeResolver interface {
	ResolveType(fn any) (Annotation, error)
}

// ResolverFunc adapts a function to TypeResolver.
type ResolverFunc func(fn any) (Annotation, error)

func (f ResolverFunc) ResolveType(fn any) (Annotation, error) { return f(fn) }

// Annotation is a resolved input type. Several alternatives mean a union;
// nil entries are placeholders for types that could not be resolved and
// are dropped. An Annotation without alternatives is unconstrained.
type Annotation struct {
	Alternatives []Node
	Nullable     bool
}

// callable resolves the accepted type of fn and converts it.
func (c *Converter) callable(fn *Callable, at pathRef, depth int) (*js.Schema, error) {
	ann, err := c.opts.Resolver.ResolveType(fn.Func)
	if err != nil {
		return nil, at.fail(CodeResolverFailed, fn, err, "name", fn.Name)
	}
	alts := make([]Node, 0, len(ann.Alternatives)+1)
	for _, n := range ann.Alternatives {
		if !isNilNode(n) {
			alts = append(alts, n)
		}
	}
	if len(alts) == 0 {
		return js.New(), nil
	}
	var target Node
	if len(alts) == 1 && !ann.Nullable {
		target = alts[0]
	} else {
		if ann.Nullable {
			alts = append(alts, &Literal{})
		}
		target = &Union{Alternatives: alts}
	}
	out, err := c.convert(target, at, depth)
	if err != nil {
		return nil, err
	}
	return out.EnsureType(c.opts.FallbackType), nil
}

// ReflectResolver resolves the type of a Go function's first parameter.
//
//   - string, bool, integer and float kinds map to primitives
//   - pointers resolve to their element and are nullable
//   - time.Time is a date-time string
//   - slices and arrays become sequences
//   - maps with string keys become mappings with a catch-all key
//   - structs become mappings keyed by ResolveStructKey; fields tagged
//     omitempty or of pointer type are optional, the rest required
//   - interfaces and anything else are unresolvable placeholders
//
// Functions without parameters, and values that are not functions, yield an
// unconstrained Annotation.
type ReflectResolver struct{}

var timeType = reflect.TypeOf(time.Time{})

func (ReflectResolver) ResolveType(fn any) (Annotation, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func || t.NumIn() == 0 {
		return Annotation{}, nil
	}
	in := t.In(0)
	nullable := false
	for in.Kind() == reflect.Pointer {
		in = in.Elem()
		nullable = true
	}
	n := nodeForType(in, map[reflect.Type]bool{})
	return Annotation{Alternatives: []Node{n}, Nullable: nullable}, nil
}

// nodeForType returns nil for types with no node equivalent.
func nodeForType(t reflect.Type, seen map[reflect.Type]bool) Node {
	if t == timeType {
		return &Datetime{Layout: time.RFC3339}
	}
	switch t.Kind() {
	case reflect.String:
		return &Primitive{Type: TypeString}
	case reflect.Bool:
		return &Primitive{Type: TypeBoolean}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Primitive{Type: TypeInteger}
	case reflect.Float32, reflect.Float64:
		return &Primitive{Type: TypeNumber}
	case reflect.Pointer:
		elem := nodeForType(t.Elem(), seen)
		if elem == nil {
			return nil
		}
		return &Union{Alternatives: []Node{&Literal{}, elem}}
	case reflect.Slice, reflect.Array:
		return &Sequence{Items: []Node{orWildcard(nodeForType(t.Elem(), seen))}}
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil
		}
		return &Mapping{Entries: []Entry{{
			Key:   Key{Marker: MarkerOptional, CatchAll: &Primitive{Type: TypeString}},
			Value: orWildcard(nodeForType(t.Elem(), seen)),
		}}}
	case reflect.Struct:
		if seen[t] {
			return &Wildcard{}
		}
		seen[t] = true
		defer delete(seen, t)
		m := &Mapping{}
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := ResolveStructKey(sf)
			if name == "" {
				continue
			}
			marker := MarkerRequired
			if sf.Type.Kind() == reflect.Pointer || hasTagOption(sf, "omitempty") {
				marker = MarkerOptional
			}
			m.Entries = append(m.Entries, Entry{
				Key:   Key{Marker: marker, Name: name},
				Value: orWildcard(nodeForType(sf.Type, seen)),
			})
		}
		return m
	}
	return nil
}

func orWildcard(n Node) Node {
	if n == nil {
		return &Wildcard{}
	}
	return n
}

// ResolveStructKey resolves the external key of a struct field.
// Priority: oaskema:"name=..." > json tag name > field name. It returns ""
// for a field disabled with json:"-"; json:"-," names the key "-".
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("oaskema"); gt != "" {
		parts := strings.Split(gt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if name, ok := strings.CutPrefix(p, "name="); ok && name != "" {
				return name
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return ""
		}
		switch i := strings.IndexByte(jt, ','); {
		case i < 0:
			return jt
		case i > 0:
			return jt[:i]
		}
	}
	return sf.Name
}

func hasTagOption(sf reflect.StructField, opt string) bool {
	jt := sf.Tag.Get("json")
	parts := strings.Split(jt, ",")
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == opt {
			return true
		}
	}
	return false
}
