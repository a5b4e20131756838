package predicate

// Predicate is either kind of mutation predicate.
type Predicate[T any] interface {
	~func(T) bool
}

// Any matches when at least one of ps does.  Any() matches nothing.
func Any[P Predicate[T], T any](ps ...P) P {
	return func(x T) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}
		return false
	}
}

// All matches when every one of ps does.  All() matches everything.
func All[P Predicate[T], T any](ps ...P) P {
	return func(x T) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

func Not[P Predicate[T], T any](p P) P {
	return func(x T) bool {
		return !p(x)
	}
}
