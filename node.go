package oaskema

// Node is one element of a schema description tree. The set of node kinds
// is closed: every implementation lives in this file and the converter
// dispatches over them with a single type switch. Validators outside the
// vocabulary are wrapped in Opaque and left to a Hook.
//
// Nodes are immutable once handed to the converter.
type Node interface {
	Kind() NodeKind
	node()
}

// NodeKind identifies a Node variant.
type NodeKind int

const (
	KindPrimitive NodeKind = iota
	KindLiteral
	KindSequence
	KindMapping
	KindUnion
	KindIntersection
	KindRange
	KindClamp
	KindLength
	KindPattern
	KindIn
	KindDatetime
	KindFormat
	KindCoerce
	KindWildcard
	KindEnumType
	KindCallable
	KindOpaque
)

var kindNames = [...]string{
	KindPrimitive:    "primitive",
	KindLiteral:      "literal",
	KindSequence:     "sequence",
	KindMapping:      "mapping",
	KindUnion:        "union",
	KindIntersection: "intersection",
	KindRange:        "range",
	KindClamp:        "clamp",
	KindLength:       "length",
	KindPattern:      "pattern",
	KindIn:           "in",
	KindDatetime:     "datetime",
	KindFormat:       "format",
	KindCoerce:       "coerce",
	KindWildcard:     "wildcard",
	KindEnumType:     "enum",
	KindCallable:     "callable",
	KindOpaque:       "opaque",
}

func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Primitive is a scalar type such as string or integer.
type Primitive struct {
	Type PrimitiveType
}

// Literal requires a value equal to Value. Value must be nil, a string, a
// bool or a Go integer/float.
type Literal struct {
	Value any
}

// Sequence is an array. One item describes a homogeneous array; several
// items describe a positional tuple.
type Sequence struct {
	Items []Node
}

// Mapping is an ordered set of key/value declarations describing an object.
type Mapping struct {
	Entries []Entry
	Extra   ExtraPolicy
}

// Entry is one key/value declaration of a Mapping.
type Entry struct {
	Key   Key
	Value Node
}

// Key annotates a Mapping entry. Exactly one of Name, Group or CatchAll is
// used:
//
//   - Name: a fixed property name.
//   - Group: a presence group, "at least one of these names" when Marker is
//     MarkerRequired. Every member gets the entry's value type unless the
//     value is a Wildcard.
//   - CatchAll: a non-literal key; its value describes any other property.
type Key struct {
	Marker      Marker
	Name        string
	Group       []string
	CatchAll    Node
	Description string
	// Default, when set, is called at conversion time to materialize the
	// property's default value.
	Default func() any
	// Msg is the human readable text attached to a presence group.
	Msg string
}

// Union accepts a value matching any of its alternatives.
type Union struct {
	Alternatives []Node
}

// Intersection accepts a value matching all of its members.
type Intersection struct {
	Members []Node
}

// Range bounds a number. Bounds are inclusive unless the matching Excluded
// flag is set.
type Range struct {
	Min, Max                 *float64
	MinExcluded, MaxExcluded bool
}

// Clamp bounds a number; its bounds are always inclusive.
type Clamp struct {
	Min, Max *float64
}

// Length bounds the length of a string.
type Length struct {
	Min, Max *int
}

// Pattern requires a string to match a regular expression.
type Pattern struct {
	Expr string
}

// In requires membership in a fixed list of scalar values.
type In struct {
	Members []any
}

// Datetime is a date-time string. Layout is informational.
type Datetime struct {
	Layout string
}

// Format tags a string with a named format or shape marker (email, url,
// lower, upper...).
type Format struct {
	Name string
}

// Coerce converts its input to Target before validation.
type Coerce struct {
	Target Node
}

// Wildcard accepts anything.
type Wildcard struct{}

// EnumType is a closed set of named members.
type EnumType struct {
	Name    string
	Members []EnumMember
}

// EnumMember is one named value of an EnumType.
type EnumMember struct {
	Name  string
	Value any
}

// Callable is a validator function whose accepted input type is obtained
// from the configured TypeResolver.
type Callable struct {
	Name string
	Func any
}

// Opaque wraps a validator the built-in vocabulary does not know. Only a
// Hook can convert it.
type Opaque struct {
	Value any
}

func (*Primitive) Kind() NodeKind    { return KindPrimitive }
func (*Literal) Kind() NodeKind      { return KindLiteral }
func (*Sequence) Kind() NodeKind     { return KindSequence }
func (*Mapping) Kind() NodeKind      { return KindMapping }
func (*Union) Kind() NodeKind        { return KindUnion }
func (*Intersection) Kind() NodeKind { return KindIntersection }
func (*Range) Kind() NodeKind        { return KindRange }
func (*Clamp) Kind() NodeKind        { return KindClamp }
func (*Length) Kind() NodeKind       { return KindLength }
func (*Pattern) Kind() NodeKind      { return KindPattern }
func (*In) Kind() NodeKind           { return KindIn }
func (*Datetime) Kind() NodeKind     { return KindDatetime }
func (*Format) Kind() NodeKind       { return KindFormat }
func (*Coerce) Kind() NodeKind       { return KindCoerce }
func (*Wildcard) Kind() NodeKind     { return KindWildcard }
func (*EnumType) Kind() NodeKind     { return KindEnumType }
func (*Callable) Kind() NodeKind     { return KindCallable }
func (*Opaque) Kind() NodeKind       { return KindOpaque }

func (*Primitive) node()    {}
func (*Literal) node()      {}
func (*Sequence) node()     {}
func (*Mapping) node()      {}
func (*Union) node()        {}
func (*Intersection) node() {}
func (*Range) node()        {}
func (*Clamp) node()        {}
func (*Length) node()       {}
func (*Pattern) node()      {}
func (*In) node()           {}
func (*Datetime) node()     {}
func (*Format) node()       {}
func (*Coerce) node()       {}
func (*Wildcard) node()     {}
func (*EnumType) node()     {}
func (*Callable) node()     {}
func (*Opaque) node()       {}

// isNullLiteral reports whether n is the null literal.
func isNullLiteral(n Node) bool {
	l, ok := n.(*Literal)
	return ok && l != nil && l.Value == nil
}

// isWildcard reports whether n is the Wildcard node.
func isWildcard(n Node) bool {
	w, ok := n.(*Wildcard)
	return ok && w != nil
}
