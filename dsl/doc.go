// Package dsl provides builders for oaskema schema trees.
//
// Overview
//   - Primitives: String()/Int()/Float()/Bool(), literals Lit(v)/Null().
//   - Containers: List(item), Tuple(items...), Object() builder.
//   - Combinators: Any(...), Maybe(n), All(...).
//   - Constraints: Range(Min/Max/MinExclusive/MaxExclusive), Clamp(...),
//     Length(MinLen/MaxLen), Match(expr), In(...), InKeys(m), Datetime(),
//     formats Email()/URL()/FqdnURL() and shape markers Lower()/Upper()/
//     Capitalize()/Title()/Strip().
//   - Others: Coerce(n), Wildcard(), Enum(name, Member(...)...), Func(fn),
//     Opaque(v) for hook-converted validators.
//
// Object builder
//
//	obj := dsl.Object().
//		Required("id", dsl.String()).Description("identifier").
//		Optional("color", dsl.String()).
//		Optional("temperature", dsl.Int()).Default(2700).
//		AtLeastOne(dsl.Wildcard(), "color", "temperature").
//		Build()
//
// Keys apply in declaration order: a later declaration of the same key
// replaces the earlier one in the converted document. AtLeastOne declares a
// presence group; with a Wildcard value the group only requires presence,
// leaving member types to their own declarations.
//
// File layout (roles)
//   - primitives.go: scalar, literal, container and enum constructors.
//   - constraints.go: numeric, length, pattern and format constraints.
//   - union.go: Any/Maybe/All.
//   - object_builder.go: objectBuilder/keyStep and Build.
package dsl
