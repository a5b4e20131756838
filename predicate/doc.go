// Package predicate provides argument and property predicates for
// mutations.
//
// Value predicates (mutation.ArgPredicate) test a kdl.Value; property
// predicates (mutation.PropPredicate) test a kdl.Property. Any, All and
// Not combine predicates of either kind.
//
// ArgExpr and PropExpr compile boolean expressions in the
// github.com/expr-lang/expr language. Argument expressions see the
// variables value, kind and tag; property expressions see key as well:
//
//	p, err := predicate.PropExpr(`key startsWith "x" && value > 1`)
//
// The function glob(pattern, s) matches s against a path/filepath glob.
package predicate
