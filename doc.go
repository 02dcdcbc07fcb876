// Package oaskema translates validation-schema trees into OpenAPI /
// JSON Schema documents.
//
// A schema tree is built from a closed set of Node kinds (primitives,
// literals, sequences, mappings, unions, intersections, constraints,
// coercions, the Wildcard, enum types and callables), usually through the
// dsl package. Convert walks the tree once and returns an ordered
// *jsonschema.Schema:
//
//	obj := dsl.Object().
//		Required("name", dsl.String()).
//		Optional("age", dsl.All(dsl.Int(), dsl.Range(dsl.Min(0)))).
//		Build()
//	doc, err := oaskema.Convert(obj)
//
// Combinators are simplified while converting: null alternatives of a union
// fold into nullability, identical alternatives collapse, a Wildcard
// alternative absorbs the rest; intersections merge disjoint fragments and
// fall back to allOf when keywords collide. Mapping presence groups ("at
// least one of these keys") become an anyOf of required-key combinations.
//
// Design policy:
//   - Keep only public APIs in the root package; put helpers under internal/.
//   - Builders live under dsl/, the output model under jsonschema/.
//   - Conversion is a pure function of the node and the options; a
//     Converter may be shared between goroutines.
//
// Every failure is an *UnconvertibleError carrying a JSON Pointer to the
// offending location; errors.Is(err, ErrUnconvertible) matches all of them.
package oaskema
