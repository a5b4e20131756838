package predicate

import (
	"fmt"
	"path/filepath"

	"github.com/signadot/kdl-mutate/kdl"
	"github.com/signadot/kdl-mutate/mutation"
)

// Equals matches values equal to v, including the type annotation.
func Equals(v kdl.Value) mutation.ArgPredicate {
	return func(x kdl.Value) bool {
		return kdl.ValueEqual(v, x)
	}
}

// OneOf matches values equal to any of vs.
func OneOf(vs ...kdl.Value) mutation.ArgPredicate {
	ps := make([]mutation.ArgPredicate, len(vs))
	for i := range vs {
		ps[i] = Equals(vs[i])
	}
	return Any(ps...)
}

func OfType(t kdl.ValueType) mutation.ArgPredicate {
	return func(x kdl.Value) bool {
		return x.Type == t
	}
}

// Tagged matches values with the type annotation tag.
func Tagged(tag string) mutation.ArgPredicate {
	return func(x kdl.Value) bool {
		return x.Tag == tag
	}
}

// Glob matches string values against pattern, as path/filepath.Match.
func Glob(pattern string) (mutation.ArgPredicate, error) {
	if err := checkPattern(pattern); err != nil {
		return nil, err
	}
	return func(x kdl.Value) bool {
		if x.Type != kdl.StringType {
			return false
		}
		m, _ := filepath.Match(pattern, x.String)
		return m
	}, nil
}

func checkPattern(pattern string) error {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("%w %q: %w", ErrBadPattern, pattern, err)
	}
	return nil
}
