package dsl

import (
	"sort"

	oaskema "github.com/reoring/oaskema"
)

// String describes a string.
func String() *oaskema.Primitive { return &oaskema.Primitive{Type: oaskema.TypeString} }

// Int describes an integer.
func Int() *oaskema.Primitive { return &oaskema.Primitive{Type: oaskema.TypeInteger} }

// Float describes a number.
func Float() *oaskema.Primitive { return &oaskema.Primitive{Type: oaskema.TypeNumber} }

// Bool describes a boolean.
func Bool() *oaskema.Primitive { return &oaskema.Primitive{Type: oaskema.TypeBoolean} }

// Lit requires the exact value v.
func Lit(v any) *oaskema.Literal { return &oaskema.Literal{Value: v} }

// Null is the null literal. Inside Any it makes the union nullable.
func Null() *oaskema.Literal { return &oaskema.Literal{} }

// List describes a homogeneous array of item.
func List(item oaskema.Node) *oaskema.Sequence {
	return &oaskema.Sequence{Items: []oaskema.Node{item}}
}

// Tuple describes a positional array.
func Tuple(items ...oaskema.Node) *oaskema.Sequence {
	return &oaskema.Sequence{Items: append([]oaskema.Node(nil), items...)}
}

// Wildcard accepts any value.
func Wildcard() *oaskema.Wildcard { return &oaskema.Wildcard{} }

// Coerce describes a value converted to target before validation.
func Coerce(target oaskema.Node) *oaskema.Coerce { return &oaskema.Coerce{Target: target} }

// Enum declares a closed set of named members.
func Enum(name string, members ...oaskema.EnumMember) *oaskema.EnumType {
	return &oaskema.EnumType{Name: name, Members: append([]oaskema.EnumMember(nil), members...)}
}

// Member is one named value of an Enum.
func Member(name string, value any) oaskema.EnumMember {
	return oaskema.EnumMember{Name: name, Value: value}
}

// Func wraps a validator function; its input type is resolved at conversion.
func Func(fn any) *oaskema.Callable { return &oaskema.Callable{Func: fn} }

// NamedFunc is Func with a name used in error messages.
func NamedFunc(name string, fn any) *oaskema.Callable {
	return &oaskema.Callable{Name: name, Func: fn}
}

// Opaque wraps a custom validator for a conversion hook.
func Opaque(v any) *oaskema.Opaque { return &oaskema.Opaque{Value: v} }

// In requires membership in members.
func In(members ...any) *oaskema.In {
	return &oaskema.In{Members: append([]any(nil), members...)}
}

// InKeys requires membership in the key set of m, in sorted order.
func InKeys[V any](m map[string]V) *oaskema.In {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	members := make([]any, len(keys))
	for i, k := range keys {
		members[i] = k
	}
	return &oaskema.In{Members: members}
}
