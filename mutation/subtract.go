package mutation

import (
	"fmt"
	"slices"

	"github.com/signadot/kdl-mutate/debug"
	"github.com/signadot/kdl-mutate/kdl"
)

const (
	subtractName name = "subtract"
)

var _ Mutation = (*Subtract)(nil)

// ChildPolicy says what Subtract does with the child document of a node.
type ChildPolicy int

const (
	KeepChild ChildPolicy = iota
	EmptyChild
	DeleteChild
)

func (p ChildPolicy) String() string {
	switch p {
	case KeepChild:
		return "keep"
	case EmptyChild:
		return "empty"
	case DeleteChild:
		return "delete"
	}
	return "<unknown child policy>"
}

// SubtractConfig holds the parts of a Subtract.  At most one of
// EmptyChild and DeleteChild may be set.
type SubtractConfig struct {
	ArgPredicates  []ArgPredicate
	PropPredicates []PropPredicate
	EmptyChild     bool
	DeleteChild    bool
}

// Subtract builds a node from selected parts of another.
//
// An argument is kept when at least one argument predicate matches it,
// so with no argument predicates no arguments are kept.  A property is
// dropped when any property predicate matches it, so with no property
// predicates all properties are kept.  The child is kept, replaced by
// the empty document, or dropped according to the child policy.
//
// A Subtract with no predicates which keeps the child does not apply to
// any node.
//
// A Subtract is immutable and safe for concurrent use.
type Subtract struct {
	args        []ArgPredicate
	props       []PropPredicate
	emptyChild  bool
	deleteChild bool
}

// NewSubtract creates a Subtract from cfg, failing with
// ErrInvalidConfiguration if cfg asks both to empty and to delete the
// child.
func NewSubtract(cfg SubtractConfig) (*Subtract, error) {
	if err := validateChildPolicy(cfg.EmptyChild, cfg.DeleteChild); err != nil {
		return nil, err
	}
	return &Subtract{
		args:        slices.Clone(cfg.ArgPredicates),
		props:       slices.Clone(cfg.PropPredicates),
		emptyChild:  cfg.EmptyChild,
		deleteChild: cfg.DeleteChild,
	}, nil
}

func validateChildPolicy(emptyChild, deleteChild bool) error {
	if emptyChild && deleteChild {
		return fmt.Errorf("%w: only one of empty child and delete child may be set", ErrInvalidConfiguration)
	}
	return nil
}

func (s *Subtract) String() string {
	return subtractName.String()
}

func (s *Subtract) ArgPredicates() int {
	return len(s.args)
}

func (s *Subtract) PropPredicates() int {
	return len(s.props)
}

func (s *Subtract) ChildPolicy() ChildPolicy {
	switch {
	case s.emptyChild:
		return EmptyChild
	case s.deleteChild:
		return DeleteChild
	}
	return KeepChild
}

// IsNoop reports whether s leaves every node unaffected.
func (s *Subtract) IsNoop() bool {
	return len(s.args) == 0 && len(s.props) == 0 && !s.emptyChild && !s.deleteChild
}

// Apply returns the node built from the selected parts of node.  A nil
// node is never affected.
func (s *Subtract) Apply(node *kdl.Node) (*kdl.Node, bool) {
	if node == nil || s.IsNoop() {
		return nil, false
	}
	if debug.Mutation() {
		debug.Logf("%s mutation (child %s) on %s\n", s, s.ChildPolicy(), node)
	}
	b := node.ToBuilder()
	for _, arg := range node.Args() {
		if s.keepArg(arg) {
			b.AddArg(arg)
		}
	}
	for _, prop := range node.Properties() {
		if !s.dropProp(prop) {
			b.AddProperty(prop)
		}
	}
	switch s.ChildPolicy() {
	case EmptyChild:
		b.SetChild(kdl.Empty())
	case KeepChild:
		b.SetChild(node.Child())
	}
	res := b.Build()
	if debug.Mutation() {
		debug.Logf("%s mutation result %s\n", s, res)
	}
	return res, true
}

func (s *Subtract) keepArg(v kdl.Value) bool {
	for _, p := range s.args {
		if p(v) {
			return true
		}
	}
	return false
}

func (s *Subtract) dropProp(prop kdl.Property) bool {
	for _, p := range s.props {
		if p(prop) {
			return true
		}
	}
	return false
}

// SubtractBuilder accumulates the configuration of a Subtract.
type SubtractBuilder struct {
	cfg SubtractConfig
}

func NewSubtractBuilder() *SubtractBuilder {
	return &SubtractBuilder{}
}

func (b *SubtractBuilder) AddArg(p ArgPredicate) *SubtractBuilder {
	b.cfg.ArgPredicates = append(b.cfg.ArgPredicates, p)
	return b
}

func (b *SubtractBuilder) AddProp(p PropPredicate) *SubtractBuilder {
	b.cfg.PropPredicates = append(b.cfg.PropPredicates, p)
	return b
}

func (b *SubtractBuilder) EmptyChild() *SubtractBuilder {
	b.cfg.EmptyChild = true
	return b
}

func (b *SubtractBuilder) DeleteChild() *SubtractBuilder {
	b.cfg.DeleteChild = true
	return b
}

func (b *SubtractBuilder) Build() (*Subtract, error) {
	if err := validateChildPolicy(b.cfg.EmptyChild, b.cfg.DeleteChild); err != nil {
		return nil, err
	}
	return NewSubtract(b.cfg)
}
