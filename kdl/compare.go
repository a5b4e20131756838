package kdl

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Tags are compared last.
func Compare(a, b Value) int {
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	var c int
	switch a.Type {
	case NumberType:
		c = compareNumbers(a, b)
	case StringType:
		c = strings.Compare(a.String, b.String)
	case BoolType:
		switch {
		case a.Bool == b.Bool:
		case !a.Bool:
			c = -1
		default:
			c = 1
		}
	}
	if c != 0 {
		return c
	}
	return strings.Compare(a.Tag, b.Tag)
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String
func rank(t ValueType) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	}
	return 100
}

func compareNumbers(a, b Value) int {
	// Sub-rank: Int64 < Float64 < literal text
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(v Value) int {
	if v.Int64 != nil {
		return 0
	}
	if v.Float64 != nil {
		return 1
	}
	return 2
}

// ValueEqual reports whether a and b have the same type, payload and tag.
func ValueEqual(a, b Value) bool {
	return Compare(a, b) == 0
}

// Equal reports whether two nodes are deeply equal.  Nil nodes are
// equal only to each other.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.name != b.name || a.tag != b.tag {
		return false
	}
	if len(a.args) != len(b.args) || len(a.props) != len(b.props) {
		return false
	}
	for i := range a.args {
		if !ValueEqual(a.args[i], b.args[i]) {
			return false
		}
	}
	for k, av := range a.props {
		bv, ok := b.props[k]
		if !ok || !ValueEqual(av, bv) {
			return false
		}
	}
	return DocumentEqual(a.child, b.child)
}

// DocumentEqual reports whether two documents hold equal nodes in the
// same order.  A nil document (no child) differs from an empty one.
func DocumentEqual(a, b *Document) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		if !Equal(a.nodes[i], b.nodes[i]) {
			return false
		}
	}
	return true
}
