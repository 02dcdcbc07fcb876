package oaskema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	oaskema "github.com/reoring/oaskema"
	g "github.com/reoring/oaskema/dsl"
	js "github.com/reoring/oaskema/jsonschema"
)

func TestUnion(t *testing.T) {
	cases := []struct {
		name string
		node oaskema.Node
		want any
	}{
		{"nullable string", g.Any(g.Null(), g.String()), obj{"type": "string", "nullable": true}},
		{"maybe", g.Maybe(g.Int()), obj{"type": "integer", "nullable": true}},
		{"single", g.Any(g.String()), obj{"type": "string"}},
		{"empty", g.Any(), obj{}},
		{"only null", g.Any(g.Null()), obj{"nullable": true}},
		{"duplicates collapse", g.Any(g.String(), g.String()), obj{"type": "string"}},
		{"distinct alternatives", g.Any(g.String(), g.Int(), g.String()), obj{
			"anyOf": list{obj{"type": "string"}, obj{"type": "integer"}},
		}},
		{"nullable twin folds", g.Any(g.String(), g.Maybe(g.String())), obj{"type": "string", "nullable": true}},
		{"wildcard wins", g.Any(g.String(), g.Wildcard(), g.Int()), obj{"type": "object", "additionalProperties": true}},
		{"nullable anyOf", g.Any(g.Int(), g.Null(), g.Bool()), obj{
			"anyOf":    list{obj{"type": "integer"}, obj{"type": "boolean"}},
			"nullable": true,
		}},
		{"literals", g.Any(g.Lit("a"), g.Lit("b"), g.Lit("a")), obj{
			"anyOf": list{obj{"enum": list{"a"}}, obj{"enum": list{"b"}}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := oaskema.Convert(tc.node)
			require.NoError(t, err)
			requireSchema(t, tc.want, got)
		})
	}
}

func TestUnion_OpenAPI31(t *testing.T) {
	cases := []struct {
		name string
		node oaskema.Node
		want any
	}{
		{"type list", g.Maybe(g.String()), obj{"type": list{"string", "null"}}},
		{"enum gains null", g.Maybe(g.Lit("x")), obj{"enum": list{"x", nil}}},
		{"typed enum", g.Maybe(g.In("a", "b")), obj{"type": list{"string", "null"}, "enum": list{"a", "b", nil}}},
		{"anyOf gains null", g.Any(g.Int(), g.Null(), g.Bool()), obj{
			"anyOf": list{obj{"type": "integer"}, obj{"type": "boolean"}, obj{"type": "null"}},
		}},
		{"shapeless wraps", g.Maybe(g.Match("^a")), obj{
			"anyOf": list{obj{"pattern": "^a"}, obj{"type": "null"}},
		}},
		{"only null", g.Any(g.Null()), obj{}},
		{"nullable twin folds", g.Any(g.Maybe(g.Int()), g.Int()), obj{"type": list{"integer", "null"}}},
		{"wrapped twin folds", g.Any(g.Maybe(g.Match("^a")), g.Match("^a")), obj{
			"anyOf": list{obj{"pattern": "^a"}, obj{"type": "null"}},
		}},
		{"wrapped twin folds in either order", g.Any(g.Match("^a"), g.Maybe(g.Match("^a"))), obj{
			"anyOf": list{obj{"pattern": "^a"}, obj{"type": "null"}},
		}},
		{"anyOf twin folds", g.Any(g.Maybe(g.Any(g.Int(), g.Bool())), g.Any(g.Int(), g.Bool()), g.String()), obj{
			"anyOf": list{
				obj{"anyOf": list{obj{"type": "integer"}, obj{"type": "boolean"}, obj{"type": "null"}}},
				obj{"type": "string"},
			},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := oaskema.Convert(tc.node, oaskema.WithOpenAPIVersion(oaskema.OpenAPI31))
			require.NoError(t, err)
			requireSchema(t, tc.want, got)
		})
	}
}

func TestUnion_AlternativeFailurePath(t *testing.T) {
	_, err := oaskema.Convert(g.Any(g.String(), g.Opaque(1)))
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, "/anyOf/1", ue.Path)
}

func TestIntersection(t *testing.T) {
	cases := []struct {
		name string
		node oaskema.Node
		want any
	}{
		{"disjoint constraints merge", g.All(
			g.Range(g.Min(1), g.Max(10)),
			g.Length(g.MinLen(1), g.MaxLen(5)),
		), obj{"type": "string", "minimum": 1, "maximum": 10, "minLength": 1, "maxLength": 5}},
		{"colliding ranges", g.All(
			g.Range(g.Min(1), g.Max(10)),
			g.Range(g.Min(5)),
		), obj{"allOf": list{
			obj{"minimum": 1, "maximum": 10},
			obj{"minimum": 5},
		}}},
		{"typed merge", g.All(g.Int(), g.Range(g.Min(0))), obj{"type": "integer", "minimum": 0}},
		{"skips wildcard and duplicates", g.All(g.Int(), g.Wildcard(), g.Int(), g.Range(g.Min(0))), obj{
			"type": "integer", "minimum": 0,
		}},
		{"skips empty fragments", g.All(g.Any(), g.Bool()), obj{"type": "boolean"}},
		{"empty", g.All(), obj{"type": "string"}},
		{"collision keeps every accepted fragment", g.All(g.Int(), g.Range(g.Min(0)), g.String()), obj{"allOf": list{
			obj{"type": "integer"},
			obj{"minimum": 0},
			obj{"type": "string"},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := oaskema.Convert(tc.node)
			require.NoError(t, err)
			requireSchema(t, tc.want, got)
		})
	}
}

func TestIntersection_DisjointOrderIndependent(t *testing.T) {
	a, err := oaskema.Convert(g.All(g.Int(), g.Range(g.Min(1)), g.Match("^[0-9]+$")))
	require.NoError(t, err)
	b, err := oaskema.Convert(g.All(g.Match("^[0-9]+$"), g.Range(g.Min(1)), g.Int()))
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.NotEqual(t, a.Keys(), b.Keys())
}

func TestIntersection_MemberFailurePath(t *testing.T) {
	_, err := oaskema.Convert(g.All(g.Int(), g.Any(g.String(), g.Opaque(nil))))
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, "/allOf/1/anyOf/1", ue.Path)
}

func TestUnion_ResultIsIndependentOfInputs(t *testing.T) {
	shared := g.String()
	got, err := oaskema.Convert(g.Object().
		Optional("a", g.Maybe(shared)).
		Optional("b", shared).
		Build())
	require.NoError(t, err)
	b, ok := got.Property("b")
	require.True(t, ok)
	require.True(t, b.Equal(js.Typed(js.TypeString)))
}
