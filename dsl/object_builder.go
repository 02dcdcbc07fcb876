package dsl

import oaskema "github.com/reoring/oaskema"

type objectBuilder struct {
	entries []oaskema.Entry
	extra   oaskema.ExtraPolicy
}

type keyStep struct {
	b   *objectBuilder
	idx int
}

// Object creates a new mapping builder. Undeclared keys are prevented
// unless AllowExtra or CatchAll is used.
func Object() *objectBuilder {
	return &objectBuilder{extra: oaskema.ExtraPrevent}
}

func (b *objectBuilder) add(k oaskema.Key, v oaskema.Node) *keyStep {
	b.entries = append(b.entries, oaskema.Entry{Key: k, Value: v})
	return &keyStep{b: b, idx: len(b.entries) - 1}
}

// Required declares a mandatory key.
func (b *objectBuilder) Required(name string, v oaskema.Node) *keyStep {
	return b.add(oaskema.Key{Marker: oaskema.MarkerRequired, Name: name}, v)
}

// Optional declares a key that may be omitted.
func (b *objectBuilder) Optional(name string, v oaskema.Node) *keyStep {
	return b.add(oaskema.Key{Marker: oaskema.MarkerOptional, Name: name}, v)
}

// Exclusive declares an optional key belonging to a mutually exclusive set.
func (b *objectBuilder) Exclusive(name string, v oaskema.Node) *keyStep {
	return b.add(oaskema.Key{Marker: oaskema.MarkerExclusive, Name: name}, v)
}

// Inclusive declares an optional key belonging to an all-or-none set.
func (b *objectBuilder) Inclusive(name string, v oaskema.Node) *keyStep {
	return b.add(oaskema.Key{Marker: oaskema.MarkerInclusive, Name: name}, v)
}

// Remove declares a key that is accepted but dropped; it does not appear
// in the converted document.
func (b *objectBuilder) Remove(name string, v oaskema.Node) *keyStep {
	return b.add(oaskema.Key{Marker: oaskema.MarkerRemove, Name: name}, v)
}

// AtLeastOne declares a presence group: at least one of names must be
// present. With a Wildcard value the group only requires presence; any
// other value also types every member.
func (b *objectBuilder) AtLeastOne(v oaskema.Node, names ...string) *keyStep {
	return b.add(oaskema.Key{Marker: oaskema.MarkerRequired, Group: append([]string{}, names...)}, v)
}

// AnyOf types every member of names with v without requiring any of them.
func (b *objectBuilder) AnyOf(v oaskema.Node, names ...string) *keyStep {
	return b.add(oaskema.Key{Marker: oaskema.MarkerOptional, Group: append([]string{}, names...)}, v)
}

// CatchAll declares the value of every undeclared key matching key.
func (b *objectBuilder) CatchAll(key, v oaskema.Node) *keyStep {
	return b.add(oaskema.Key{Marker: oaskema.MarkerOptional, CatchAll: key}, v)
}

// AllowExtra accepts undeclared keys.
func (b *objectBuilder) AllowExtra() *objectBuilder {
	b.extra = oaskema.ExtraAllow
	return b
}

// RemoveExtra drops undeclared keys.
func (b *objectBuilder) RemoveExtra() *objectBuilder {
	b.extra = oaskema.ExtraRemove
	return b
}

// PreventExtra rejects undeclared keys (default).
func (b *objectBuilder) PreventExtra() *objectBuilder {
	b.extra = oaskema.ExtraPrevent
	return b
}

// Build returns the mapping. The builder may keep being used; later changes
// do not affect mappings already built.
func (b *objectBuilder) Build() *oaskema.Mapping {
	entries := make([]oaskema.Entry, len(b.entries))
	copy(entries, b.entries)
	return &oaskema.Mapping{Entries: entries, Extra: b.extra}
}

func (s *keyStep) key() *oaskema.Key { return &s.b.entries[s.idx].Key }

// Description documents the current key.
func (s *keyStep) Description(text string) *keyStep {
	s.key().Description = text
	return s
}

// Default sets the default value of the current key.
func (s *keyStep) Default(v any) *keyStep {
	s.key().Default = func() any { return v }
	return s
}

// DefaultFunc sets a factory evaluated at conversion time.
func (s *keyStep) DefaultFunc(fn func() any) *keyStep {
	s.key().Default = fn
	return s
}

// Msg sets the message of the current presence group.
func (s *keyStep) Msg(text string) *keyStep {
	s.key().Msg = text
	return s
}

func (s *keyStep) Required(name string, v oaskema.Node) *keyStep  { return s.b.Required(name, v) }
func (s *keyStep) Optional(name string, v oaskema.Node) *keyStep  { return s.b.Optional(name, v) }
func (s *keyStep) Exclusive(name string, v oaskema.Node) *keyStep { return s.b.Exclusive(name, v) }
func (s *keyStep) Inclusive(name string, v oaskema.Node) *keyStep { return s.b.Inclusive(name, v) }
func (s *keyStep) Remove(name string, v oaskema.Node) *keyStep    { return s.b.Remove(name, v) }
func (s *keyStep) AtLeastOne(v oaskema.Node, names ...string) *keyStep {
	return s.b.AtLeastOne(v, names...)
}
func (s *keyStep) AnyOf(v oaskema.Node, names ...string) *keyStep { return s.b.AnyOf(v, names...) }
func (s *keyStep) CatchAll(key, v oaskema.Node) *keyStep          { return s.b.CatchAll(key, v) }
func (s *keyStep) AllowExtra() *objectBuilder                     { return s.b.AllowExtra() }
func (s *keyStep) RemoveExtra() *objectBuilder                    { return s.b.RemoveExtra() }
func (s *keyStep) PreventExtra() *objectBuilder                   { return s.b.PreventExtra() }
func (s *keyStep) Build() *oaskema.Mapping                        { return s.b.Build() }
