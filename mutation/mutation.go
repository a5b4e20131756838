package mutation

import "github.com/signadot/kdl-mutate/kdl"

// Mutation transforms a single node.
//
// Apply returns the replacement for node and true, or false when node is
// unaffected and should be left as it is. Apply never modifies node.
type Mutation interface {
	Apply(node *kdl.Node) (*kdl.Node, bool)
	String() string
}

// ArgPredicate tests a node argument.
type ArgPredicate func(kdl.Value) bool

// PropPredicate tests a node property.
type PropPredicate func(kdl.Property) bool

type name string

func (n name) String() string {
	return string(n)
}
