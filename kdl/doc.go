// Package kdl provides the value tree for KDL documents.
//
// # Overview
//
// A Document is an ordered list of Nodes. A Node has a name, an optional
// type annotation, ordered arguments, keyed properties and an optional
// child Document:
//
//	(shape)point "a" "b" x=1 y=2 {
//	    inner
//	}
//
// Arguments and property values are Values, scalars of one of the
// ValueTypes (null, bool, number, string) which may also carry a type
// annotation.
//
// # Immutability
//
// Nodes and Documents never change once built. A Node is assembled with a
// NodeBuilder:
//
//	node := kdl.NewNode("point").
//	    AddArg(kdl.FromString("a")).
//	    AddProp("x", kdl.FromInt(1)).
//	    SetChild(kdl.Empty()).
//	    Build()
//
// Accessors return copies, so a Node may be shared freely between
// goroutines. Transformations produce new nodes, typically starting from
// Node.ToBuilder.
//
// A node without a child (Child returns nil) is distinct from a node whose
// child is the empty document (Child returns Empty()).
//
// # Rendering
//
// Encode and MustString render nodes as KDL text. Rendering is used for
// debug output and test messages; this package does not parse KDL.
package kdl
