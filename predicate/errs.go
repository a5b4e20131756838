package predicate

import "errors"

var (
	ErrBadPattern = errors.New("bad glob pattern")
	ErrBadExpr    = errors.New("bad expression")
)
