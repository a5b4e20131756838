package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Mutation  bool
	Predicate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Mutation = boolEnv("KDL_DEBUG_MUTATION")
	d.Predicate = boolEnv("KDL_DEBUG_PREDICATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Mutation() bool {
	return d.Mutation
}

func Predicate() bool {
	return d.Predicate
}
