package predicate

import (
	"path/filepath"

	"github.com/signadot/kdl-mutate/kdl"
	"github.com/signadot/kdl-mutate/mutation"
)

// Key matches properties named key.
func Key(key string) mutation.PropPredicate {
	return func(p kdl.Property) bool {
		return p.Key == key
	}
}

// KeyGlob matches properties whose key matches pattern, as
// path/filepath.Match.
func KeyGlob(pattern string) (mutation.PropPredicate, error) {
	if err := checkPattern(pattern); err != nil {
		return nil, err
	}
	return func(p kdl.Property) bool {
		m, _ := filepath.Match(pattern, p.Key)
		return m
	}, nil
}

// KeyValue matches the property key=v.
func KeyValue(key string, v kdl.Value) mutation.PropPredicate {
	return func(p kdl.Property) bool {
		return p.Key == key && kdl.ValueEqual(p.Value, v)
	}
}

// Value matches properties whose value matches vp.
func Value(vp mutation.ArgPredicate) mutation.PropPredicate {
	return func(p kdl.Property) bool {
		return vp(p.Value)
	}
}
