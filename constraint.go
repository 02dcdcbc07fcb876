package oaskema

import (
	"strings"

	"github.com/reoring/oaskema/internal/typemap"
	js "github.com/reoring/oaskema/jsonschema"
)

// rangeSchema renders numeric bounds; an open bound uses the exclusive keyword.
func rangeSchema(lo, hi *float64, loIncluded, hiIncluded bool) *js.Schema {
	out := js.New()
	if lo != nil {
		if loIncluded {
			out.Set(js.KeyMinimum, *lo)
		} else {
			out.Set(js.KeyExclusiveMinimum, *lo)
		}
	}
	if hi != nil {
		if hiIncluded {
			out.Set(js.KeyMaximum, *hi)
		} else {
			out.Set(js.KeyExclusiveMaximum, *hi)
		}
	}
	return out
}

func lengthSchema(l *Length) *js.Schema {
	out := js.New()
	if l.Min != nil {
		out.Set(js.KeyMinLength, *l.Min)
	}
	if l.Max != nil {
		out.Set(js.KeyMaxLength, *l.Max)
	}
	return out
}

// inSchema infers the element type from the first member through the type
// map; an empty or unrecognized list falls back to string.
func inSchema(in *In) *js.Schema {
	typ := typemap.Default
	if len(in.Members) > 0 {
		typ = typemap.ForValue(in.Members[0])
	}
	members := make([]any, len(in.Members))
	copy(members, in.Members)
	return js.Typed(typ).Set(js.KeyEnum, members)
}

func formatSchema(f *Format) *js.Schema {
	return js.New().Set(js.KeyFormat, strings.ToLower(f.Name))
}

func enumTypeSchema(e *EnumType, at pathRef) (*js.Schema, error) {
	values := make([]any, 0, len(e.Members))
	for _, m := range e.Members {
		if !isScalar(m.Value) {
			return nil, at.fail(CodeInvalidLiteral, e, nil, "value", m.Value)
		}
		values = append(values, m.Value)
	}
	return js.New().Set(js.KeyEnum, values), nil
}

func isScalar(v any) bool { return typemap.IsScalar(v) }
