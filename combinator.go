package oaskema

import (
	js "github.com/reoring/oaskema/jsonschema"
)

// union renders an "any of" node. Null alternatives are folded into the
// result's nullability instead of being listed.
func (c *Converter) union(u *Union, at pathRef, depth int) (*js.Schema, error) {
	nullable := false
	frags := make([]*js.Schema, 0, len(u.Alternatives))
	for i, alt := range u.Alternatives {
		if isNullLiteral(alt) {
			nullable = true
			continue
		}
		f, err := c.convert(alt, at.Field(js.KeyAnyOf).Index(i), depth)
		if err != nil {
			return nil, err
		}
		frags = append(frags, f)
	}

	var out *js.Schema
	switch len(frags) {
	case 0:
		out = js.New()
	case 1:
		out = frags[0]
	default:
		if p := firstPermissive(frags); p != nil {
			c.debug("union collapsed to permissive alternative", "path", at.Pointer())
			out = p
			break
		}
		alts := c.dedupe(frags)
		if len(alts) == 1 {
			out = alts[0]
		} else {
			out = js.New().Set(js.KeyAnyOf, alts)
		}
	}
	if nullable {
		out = c.markNullable(out)
	}
	return out, nil
}

// dedupe drops structurally identical alternatives and merges a fragment
// with its nullable twin into one nullable entry, keeping first positions.
func (c *Converter) dedupe(frags []*js.Schema) []*js.Schema {
	out := make([]*js.Schema, 0, len(frags))
next:
	for _, f := range frags {
		for i, kept := range out {
			if f.Equal(kept) {
				continue next
			}
			fBase, fNull := c.stripNullable(f)
			kBase, kNull := c.stripNullable(kept)
			if fNull != kNull && fBase.Equal(kBase) {
				out[i] = c.markNullable(kBase)
				continue next
			}
		}
		out = append(out, f)
	}
	return out
}

// intersection renders an "all of" node. Disjoint member fragments merge
// into one object; any keyword collision switches to an explicit allOf of
// every accepted fragment.
func (c *Converter) intersection(in *Intersection, at pathRef, depth int) (*js.Schema, error) {
	merged := js.New()
	accepted := make([]*js.Schema, 0, len(in.Members))
	conflict := false
	for i, m := range in.Members {
		f, err := c.convert(m, at.Field(js.KeyAllOf).Index(i), depth)
		if err != nil {
			return nil, err
		}
		if f.IsEmpty() || isPermissive(f) || containsEqual(accepted, f) {
			continue
		}
		if !conflict && merged.Overlaps(f) {
			c.debug("intersection falls back to allOf", "path", at.Pointer(), "member", i)
			conflict = true
		}
		accepted = append(accepted, f)
		if !conflict {
			merged.Merge(f)
		}
	}
	if conflict {
		return js.New().Set(js.KeyAllOf, accepted), nil
	}
	return merged.EnsureType(c.opts.FallbackType), nil
}

func isPermissive(s *js.Schema) bool { return s.Equal(js.Permissive()) }

func firstPermissive(frags []*js.Schema) *js.Schema {
	for _, f := range frags {
		if isPermissive(f) {
			return f
		}
	}
	return nil
}

func containsEqual(list []*js.Schema, s *js.Schema) bool {
	for _, f := range list {
		if f.Equal(s) {
			return true
		}
	}
	return false
}
