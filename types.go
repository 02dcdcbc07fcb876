package oaskema

import js "github.com/reoring/oaskema/jsonschema"

// PrimitiveType enumerates the scalar types of Primitive.
type PrimitiveType int

const (
	TypeString  PrimitiveType = iota // Rendered as "string".
	TypeInteger                      // Rendered as "integer".
	TypeNumber                       // Rendered as "number".
	TypeBoolean                      // Rendered as "boolean".
)

// primitiveNames is the Type Map for Primitive nodes.
var primitiveNames = [...]string{
	TypeString:  js.TypeString,
	TypeInteger: js.TypeInteger,
	TypeNumber:  js.TypeNumber,
	TypeBoolean: js.TypeBoolean,
}

func (t PrimitiveType) String() string {
	if t >= 0 && int(t) < len(primitiveNames) {
		return primitiveNames[t]
	}
	return "unknown"
}

// Marker says whether a Mapping key must be present.
type Marker int

const (
	MarkerOptional  Marker = iota // The key may be omitted.
	MarkerRequired                // The key must be present.
	MarkerExclusive               // Optional; at most one key of its set (not expressed in output).
	MarkerInclusive               // Optional; all or none of its set (not expressed in output).
	MarkerRemove                  // The key is dropped from the output entirely.
)

// ExtraPolicy controls how keys not declared in a Mapping are handled.
type ExtraPolicy int

const (
	ExtraPrevent ExtraPolicy = iota // Undeclared keys are rejected (no keyword emitted).
	ExtraAllow                      // Undeclared keys are accepted (additionalProperties: true).
	ExtraRemove                     // Undeclared keys are dropped (no keyword emitted).
)

// OpenAPIVersion selects how nullability is rendered.
type OpenAPIVersion int

const (
	OpenAPI30 OpenAPIVersion = iota // nullable: true
	OpenAPI31                       // type: [T, "null"]
)

func (v OpenAPIVersion) String() string {
	if v == OpenAPI31 {
		return "3.1"
	}
	return "3.0"
}
