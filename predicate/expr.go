package predicate

import (
	"fmt"
	"path/filepath"

	"github.com/signadot/kdl-mutate/debug"
	"github.com/signadot/kdl-mutate/kdl"
	"github.com/signadot/kdl-mutate/mutation"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type argEnv struct {
	Value any    `expr:"value"`
	Type  string `expr:"kind"`
	Tag   string `expr:"tag"`
}

type propEnv struct {
	Key   string `expr:"key"`
	Value any    `expr:"value"`
	Type  string `expr:"kind"`
	Tag   string `expr:"tag"`
}

func exprOpts(env any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AsBool(),
		expr.Function("glob", func(params ...any) (any, error) {
			return filepath.Match(params[0].(string), params[1].(string))
		},
			new(func(string, string) bool)),
	}
}

// ArgExpr compiles src into an argument predicate.  A run time error,
// such as comparing a string to a number, makes the predicate false.
func ArgExpr(src string) (mutation.ArgPredicate, error) {
	prg, err := compile(src, argEnv{})
	if err != nil {
		return nil, err
	}
	return func(v kdl.Value) bool {
		return run(prg, src, argEnv{
			Value: v.Any(),
			Type:  v.Type.String(),
			Tag:   v.Tag,
		})
	}, nil
}

// PropExpr compiles src into a property predicate.  A run time error
// makes the predicate false.
func PropExpr(src string) (mutation.PropPredicate, error) {
	prg, err := compile(src, propEnv{})
	if err != nil {
		return nil, err
	}
	return func(p kdl.Property) bool {
		return run(prg, src, propEnv{
			Key:   p.Key,
			Value: p.Value.Any(),
			Type:  p.Value.Type.String(),
			Tag:   p.Value.Tag,
		})
	}, nil
}

func compile(src string, env any) (*vm.Program, error) {
	prg, err := expr.Compile(src, exprOpts(env)...)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadExpr, src, err)
	}
	return prg, nil
}

func run(prg *vm.Program, src string, env any) bool {
	res, err := expr.Run(prg, env)
	if err != nil {
		if debug.Predicate() {
			debug.Logf("predicate %q: %v\n", src, err)
		}
		return false
	}
	b, _ := res.(bool)
	if debug.Predicate() {
		debug.Logf("predicate %q on %v: %t\n", src, env, b)
	}
	return b
}
