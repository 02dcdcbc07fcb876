// Package typemap holds the fixed mapping from Go value kinds to schema
// type names.
package typemap

import (
	"reflect"

	js "github.com/reoring/oaskema/jsonschema"
)

// Default is the type name used when a value's kind is not in the table.
const Default = js.TypeString

var kinds = map[reflect.Kind]string{
	reflect.String:  js.TypeString,
	reflect.Bool:    js.TypeBoolean,
	reflect.Int:     js.TypeInteger,
	reflect.Int8:    js.TypeInteger,
	reflect.Int16:   js.TypeInteger,
	reflect.Int32:   js.TypeInteger,
	reflect.Int64:   js.TypeInteger,
	reflect.Uint:    js.TypeInteger,
	reflect.Uint8:   js.TypeInteger,
	reflect.Uint16:  js.TypeInteger,
	reflect.Uint32:  js.TypeInteger,
	reflect.Uint64:  js.TypeInteger,
	reflect.Float32: js.TypeNumber,
	reflect.Float64: js.TypeNumber,
}

// ForKind returns the type name for k.
func ForKind(k reflect.Kind) (string, bool) {
	name, ok := kinds[k]
	return name, ok
}

// ForValue returns the type name for the runtime kind of v, or Default when
// v is nil or of an unlisted kind.
func ForValue(v any) string {
	if v == nil {
		return Default
	}
	if name, ok := kinds[reflect.TypeOf(v).Kind()]; ok {
		return name
	}
	return Default
}

// IsScalar reports whether v is nil or of a kind listed in the table.
func IsScalar(v any) bool {
	if v == nil {
		return true
	}
	_, ok := kinds[reflect.TypeOf(v).Kind()]
	return ok
}
