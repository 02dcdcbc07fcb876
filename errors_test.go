package oaskema_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	oaskema "github.com/reoring/oaskema"
	g "github.com/reoring/oaskema/dsl"
	"github.com/reoring/oaskema/i18n"
	js "github.com/reoring/oaskema/jsonschema"
)

func TestConvert_NilNode(t *testing.T) {
	_, err := oaskema.Convert(nil)
	require.ErrorIs(t, err, oaskema.ErrUnconvertible)
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, "/", ue.Path)
	require.Nil(t, ue.Node)
	require.Contains(t, err.Error(), "(nil node)")

	_, err = oaskema.Convert(g.List((*oaskema.Primitive)(nil)))
	ue, ok = oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, "/items", ue.Path)
}

func TestConvert_UnconvertibleNodePath(t *testing.T) {
	schema := g.Object().
		Required("id", g.String()).
		Optional("tags", g.List(g.Opaque("custom-tag-validator"))).
		Build()

	doc, err := oaskema.Convert(schema)
	require.Nil(t, doc)
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, oaskema.CodeUnconvertible, ue.Code)
	require.Equal(t, "/properties/tags/items", ue.Path)
	require.Equal(t, oaskema.KindOpaque, ue.Node.Kind())
	require.Equal(t, "oaskema: unable to convert schema at /properties/tags/items (opaque node)", err.Error())
}

func TestConvert_PathEscapesPropertyNames(t *testing.T) {
	schema := g.Object().Required("a/b~c", g.Opaque(nil)).Build()
	_, err := oaskema.Convert(schema)
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, "/properties/a~1b~0c", ue.Path)
}

func TestConvert_InvalidLiterals(t *testing.T) {
	_, err := oaskema.Convert(g.Lit([]int{1}))
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, oaskema.CodeInvalidLiteral, ue.Code)
	require.Equal(t, "literal [1] is not a scalar", ue.Message)

	_, err = oaskema.Convert(g.Enum("Bad", g.Member("A", map[string]int{})))
	ue, ok = oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, oaskema.CodeInvalidLiteral, ue.Code)
}

func TestConvert_MaxDepth(t *testing.T) {
	c := oaskema.New(oaskema.WithMaxDepth(1))

	_, err := c.Convert(g.List(g.String()))
	require.NoError(t, err)

	_, err = c.Convert(g.List(g.List(g.String())))
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, oaskema.CodeMaxDepth, ue.Code)
	require.Equal(t, "/items/items", ue.Path)
	require.Equal(t, "1", ue.Params["depth"])
}

func TestHook_HandlesOpaqueNodes(t *testing.T) {
	var kinds []oaskema.NodeKind
	hook := func(n oaskema.Node) (*js.Schema, error) {
		kinds = append(kinds, n.Kind())
		if o, ok := n.(*oaskema.Opaque); ok && o.Value == "uuid" {
			return js.Typed(js.TypeString).Set(js.KeyFormat, "uuid"), nil
		}
		return nil, oaskema.ErrUnsupported
	}
	schema := g.Object().Required("id", g.Opaque("uuid")).Build()

	got, err := oaskema.Convert(schema, oaskema.WithHook(hook))
	require.NoError(t, err)
	requireSchema(t, obj{
		"type":       "object",
		"properties": obj{"id": obj{"type": "string", "format": "uuid"}},
		"required":   list{"id"},
	}, got)
	require.Equal(t, []oaskema.NodeKind{oaskema.KindMapping, oaskema.KindOpaque}, kinds)
}

func TestHook_ResultIsCopied(t *testing.T) {
	shared := js.Typed(js.TypeString)
	hook := func(n oaskema.Node) (*js.Schema, error) {
		if n.Kind() == oaskema.KindOpaque {
			return shared, nil
		}
		return nil, oaskema.ErrUnsupported
	}
	c := oaskema.New(oaskema.WithHook(hook))

	got, err := c.Convert(g.Any(g.Null(), g.Opaque(1)))
	require.NoError(t, err)
	requireSchema(t, obj{"type": "string", "nullable": true}, got)
	require.False(t, shared.Has(js.KeyNullable))
}

func TestHook_NilFragmentIsUnconstrained(t *testing.T) {
	hook := func(oaskema.Node) (*js.Schema, error) { return nil, nil }
	got, err := oaskema.Convert(g.Opaque(1), oaskema.WithHook(hook))
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
}

func TestHook_Failure(t *testing.T) {
	boom := errors.New("boom")
	hook := func(n oaskema.Node) (*js.Schema, error) {
		if n.Kind() == oaskema.KindPattern {
			return nil, boom
		}
		return nil, oaskema.ErrUnsupported
	}
	_, err := oaskema.Convert(g.List(g.Match("^x$")), oaskema.WithHook(hook))
	require.ErrorIs(t, err, boom)
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, oaskema.CodeHookFailed, ue.Code)
	require.Equal(t, "/items", ue.Path)
	require.True(t, strings.HasSuffix(err.Error(), ": boom"))
}

func TestErrorMessages_Japanese(t *testing.T) {
	i18n.SetLanguage("ja")
	t.Cleanup(func() { i18n.SetLanguage("en") })

	_, err := oaskema.Convert(g.Opaque(nil))
	ue, ok := oaskema.AsUnconvertible(err)
	require.True(t, ok)
	require.Equal(t, "スキーマを変換できません", ue.Message)
}

func TestConverter_ConcurrentUse(t *testing.T) {
	c := oaskema.New()
	schema := g.Object().
		AtLeastOne(g.Wildcard(), "a", "b").
		AtLeastOne(g.Wildcard(), "c", "d").
		Optional("a", g.Any(g.Null(), g.String(), g.Int())).
		Optional("c", g.All(g.Int(), g.Range(g.Min(0)))).
		Build()
	ref, err := c.Convert(schema)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*js.Schema, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Convert(schema)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		require.NoError(t, errs[i])
		require.True(t, ref.Equal(r))
	}
}
