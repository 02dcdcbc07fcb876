package oaskema

import (
	"errors"
	"reflect"

	js "github.com/reoring/oaskema/jsonschema"
)

// convert is the single dispatcher over the closed node set.
func (c *Converter) convert(n Node, at pathRef, depth int) (*js.Schema, error) {
	if c.opts.MaxDepth > 0 && depth > c.opts.MaxDepth {
		return nil, at.fail(CodeMaxDepth, n, nil, "depth", c.opts.MaxDepth)
	}
	if isNilNode(n) {
		return nil, at.fail(CodeUnconvertible, nil, nil)
	}

	if c.opts.Hook != nil {
		s, err := c.opts.Hook(n)
		switch {
		case err == nil:
			c.debug("hook converted node", "path", at.Pointer(), "kind", n.Kind())
			if s == nil {
				return js.New(), nil
			}
			return s.Clone(), nil
		case !errors.Is(err, ErrUnsupported):
			return nil, at.fail(CodeHookFailed, n, err)
		}
	}

	next := depth + 1
	switch t := n.(type) {
	case *Primitive:
		if t.Type < 0 || int(t.Type) >= len(primitiveNames) {
			return nil, at.fail(CodeUnconvertible, n, nil)
		}
		return js.Typed(primitiveNames[t.Type]), nil
	case *Literal:
		return c.literal(t, at)
	case *Sequence:
		return c.sequence(t, at, next)
	case *Mapping:
		return c.mapping(t, at, next)
	case *Union:
		return c.union(t, at, next)
	case *Intersection:
		return c.intersection(t, at, next)
	case *Range:
		return rangeSchema(t.Min, t.Max, !t.MinExcluded, !t.MaxExcluded), nil
	case *Clamp:
		return rangeSchema(t.Min, t.Max, true, true), nil
	case *Length:
		return lengthSchema(t), nil
	case *Pattern:
		return js.New().Set(js.KeyPattern, t.Expr), nil
	case *In:
		return inSchema(t), nil
	case *Datetime:
		return js.Typed(js.TypeString).Set(js.KeyFormat, "date-time"), nil
	case *Format:
		return formatSchema(t), nil
	case *Coerce:
		return c.convert(t.Target, at, next)
	case *Wildcard:
		return js.Permissive(), nil
	case *EnumType:
		return enumTypeSchema(t, at)
	case *Callable:
		return c.callable(t, at, next)
	}
	return nil, at.fail(CodeUnconvertible, n, nil)
}

func (c *Converter) literal(l *Literal, at pathRef) (*js.Schema, error) {
	if !isScalar(l.Value) {
		return nil, at.fail(CodeInvalidLiteral, l, nil, "value", l.Value)
	}
	return js.New().Set(js.KeyEnum, []any{l.Value}), nil
}

func (c *Converter) sequence(s *Sequence, at pathRef, depth int) (*js.Schema, error) {
	out := js.Typed(js.TypeArray)
	switch len(s.Items) {
	case 0:
		return out, nil
	case 1:
		item, err := c.convert(s.Items[0], at.Field(js.KeyItems), depth)
		if err != nil {
			return nil, err
		}
		return out.Set(js.KeyItems, item.EnsureType(c.opts.FallbackType)), nil
	}
	items := make([]*js.Schema, 0, len(s.Items))
	for i, n := range s.Items {
		item, err := c.convert(n, at.Field(js.KeyItems).Index(i), depth)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return out.Set(js.KeyItems, items), nil
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
