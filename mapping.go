package oaskema

import (
	"github.com/reoring/oaskema/internal/product"
	js "github.com/reoring/oaskema/jsonschema"
)

// mapping renders an object. Entries apply in declaration order; a later
// declaration of a property replaces the fragment set by an earlier one
// while keeping the property's original position.
//
// Presence groups never enter "required". Each required group contributes
// one factor to a cartesian product whose tuples become the "anyOf" list of
// {"required": [...]} alternatives, first group varying slowest.
func (c *Converter) mapping(m *Mapping, at pathRef, depth int) (*js.Schema, error) {
	props := js.New()
	required := []string{}
	var groups [][]string
	var additional any

	for _, e := range m.Entries {
		k := e.Key
		if k.Marker == MarkerRemove {
			continue
		}
		switch {
		case k.Group != nil:
			if len(k.Group) == 0 || containsString(k.Group, "") {
				return nil, at.fail(CodeInvalidKey, e.Value, nil)
			}
			if err := c.presenceGroup(props, e, at, depth); err != nil {
				return nil, err
			}
			if k.Marker == MarkerRequired {
				groups = append(groups, append([]string(nil), k.Group...))
			}

		case k.CatchAll != nil:
			if isWildcard(e.Value) {
				additional = true
				continue
			}
			f, err := c.convert(e.Value, at.Field(js.KeyAdditionalProperties), depth)
			if err != nil {
				return nil, err
			}
			additional = f

		case k.Name != "":
			f, err := c.convert(e.Value, at.Field(js.KeyProperties).Field(k.Name), depth)
			if err != nil {
				return nil, err
			}
			if k.Description != "" {
				f.Set(js.KeyDescription, k.Description)
			}
			if k.Default != nil {
				f.Set(js.KeyDefault, k.Default())
			}
			props.Set(k.Name, f)
			if k.Marker == MarkerRequired && !containsString(required, k.Name) {
				required = append(required, k.Name)
			}

		default:
			return nil, at.fail(CodeInvalidKey, e.Value, nil)
		}
	}

	out := js.Typed(js.TypeObject).
		Set(js.KeyProperties, props).
		Set(js.KeyRequired, required)
	if len(groups) > 0 {
		tuples := product.Cartesian(groups)
		alts := make([]*js.Schema, 0, len(tuples))
		for _, names := range tuples {
			alts = append(alts, js.New().Set(js.KeyRequired, names))
		}
		out.Set(js.KeyAnyOf, alts)
	}
	if additional == nil && m.Extra == ExtraAllow {
		additional = true
	}
	if additional != nil {
		out.Set(js.KeyAdditionalProperties, additional)
	}
	return out, nil
}

// presenceGroup applies a group's value to its member properties. A
// Wildcard value carries no type: members only get an empty placeholder,
// to be filled by their own declarations. Any other value is converted once
// and copied onto every member.
func (c *Converter) presenceGroup(props *js.Schema, e Entry, at pathRef, depth int) error {
	k := e.Key
	if isWildcard(e.Value) {
		for _, name := range k.Group {
			if !props.Has(name) {
				props.Set(name, js.New())
			}
		}
		return nil
	}
	f, err := c.convert(e.Value, at.Field(js.KeyProperties).Field(k.Group[0]), depth)
	if err != nil {
		return err
	}
	if k.Msg != "" {
		f.Set(js.KeyDescription, k.Msg)
	}
	if k.Description != "" {
		f.Set(js.KeyDescription, k.Description)
	}
	for _, name := range k.Group {
		props.Set(name, f.Clone())
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
