package dsl

import oaskema "github.com/reoring/oaskema"

// Any accepts a value matching at least one alternative.
func Any(alts ...oaskema.Node) *oaskema.Union {
	return &oaskema.Union{Alternatives: append([]oaskema.Node(nil), alts...)}
}

// Maybe accepts null or n.
func Maybe(n oaskema.Node) *oaskema.Union {
	return &oaskema.Union{Alternatives: []oaskema.Node{Null(), n}}
}

// All accepts a value matching every member.
func All(members ...oaskema.Node) *oaskema.Intersection {
	return &oaskema.Intersection{Members: append([]oaskema.Node(nil), members...)}
}
