package kdl

import (
	"maps"
	"slices"
)

// Node is an immutable KDL node: a name, ordered arguments, keyed
// properties and an optional child document.
//
// Nodes are created with a NodeBuilder and never change afterwards; the
// accessors return copies.
type Node struct {
	name  string
	tag   string
	args  []Value
	props map[string]Value
	child *Document
}

func (n *Node) Name() string {
	return n.name
}

// Tag returns the type annotation of the node, or "".
func (n *Node) Tag() string {
	return n.tag
}

func (n *Node) Args() []Value {
	res := make([]Value, len(n.args))
	for i := range n.args {
		res[i] = n.args[i].Clone()
	}
	return res
}

func (n *Node) NumArgs() int {
	return len(n.args)
}

func (n *Node) Arg(i int) Value {
	return n.args[i].Clone()
}

func (n *Node) Props() map[string]Value {
	res := make(map[string]Value, len(n.props))
	for k, v := range n.props {
		res[k] = v.Clone()
	}
	return res
}

func (n *Node) NumProps() int {
	return len(n.props)
}

// Prop returns the value of the property key, if present.
func (n *Node) Prop(key string) (Value, bool) {
	v, ok := n.props[key]
	if !ok {
		return Value{}, false
	}
	return v.Clone(), true
}

// Properties returns the properties of n sorted by key.
func (n *Node) Properties() []Property {
	keys := slices.Sorted(maps.Keys(n.props))
	res := make([]Property, len(keys))
	for i, k := range keys {
		res[i] = NewProperty(k, n.props[k].Clone())
	}
	return res
}

// Child returns the child document of n, or nil if n has none.
func (n *Node) Child() *Document {
	return n.child
}

func (n *Node) HasChild() bool {
	return n.child != nil
}

// ToBuilder returns a builder seeded with the name and tag of n.
// Arguments, properties and child are not carried over.
func (n *Node) ToBuilder() *NodeBuilder {
	return NewNode(n.name).SetTag(n.tag)
}

// NodeBuilder accumulates the parts of a Node.  A builder may be reused
// after Build; nodes built earlier are not affected.
type NodeBuilder struct {
	name  string
	tag   string
	args  []Value
	props map[string]Value
	child *Document
}

func NewNode(name string) *NodeBuilder {
	return &NodeBuilder{name: name}
}

func (b *NodeBuilder) SetName(name string) *NodeBuilder {
	b.name = name
	return b
}

func (b *NodeBuilder) SetTag(tag string) *NodeBuilder {
	b.tag = tag
	return b
}

func (b *NodeBuilder) AddArg(v Value) *NodeBuilder {
	b.args = append(b.args, v.Clone())
	return b
}

func (b *NodeBuilder) AddArgs(vs ...Value) *NodeBuilder {
	for _, v := range vs {
		b.AddArg(v)
	}
	return b
}

// AddProp sets the property key to v, replacing any earlier value.
func (b *NodeBuilder) AddProp(key string, v Value) *NodeBuilder {
	if b.props == nil {
		b.props = map[string]Value{}
	}
	b.props[key] = v.Clone()
	return b
}

func (b *NodeBuilder) AddProperty(p Property) *NodeBuilder {
	return b.AddProp(p.Key, p.Value)
}

// SetChild sets the child document; nil means no child.
func (b *NodeBuilder) SetChild(d *Document) *NodeBuilder {
	b.child = d
	return b
}

func (b *NodeBuilder) Build() *Node {
	return &Node{
		name:  b.name,
		tag:   b.tag,
		args:  slices.Clone(b.args),
		props: maps.Clone(b.props),
		child: b.child,
	}
}
