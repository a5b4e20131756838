package mutation

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
