package kdl

import "slices"

// Document is an ordered sequence of nodes.
type Document struct {
	nodes []*Node
}

var empty = &Document{}

// Empty returns the canonical document with no nodes.
func Empty() *Document {
	return empty
}

func NewDocument(nodes ...*Node) *Document {
	if len(nodes) == 0 {
		return empty
	}
	return &Document{nodes: slices.Clone(nodes)}
}

func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.nodes)
}

func (d *Document) Nodes() []*Node {
	if d == nil {
		return nil
	}
	return slices.Clone(d.nodes)
}

func (d *Document) IsEmpty() bool {
	return d.Len() == 0
}
