package seq

// All reports whether every element satisfies fns[0]. Without a predicate
// it tests truthiness: every element must differ from the zero value of T.
// All is vacuously true on an empty sequence.
func All[T comparable](items []T, fns ...func(T) bool) bool {
	pred := truthy[T]
	if len(fns) > 0 {
		pred = fns[0]
	}
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element satisfies fns[0]. Without a
// predicate it tests truthiness: some element must differ from the zero
// value of T. Any is vacuously false on an empty sequence.
func Any[T comparable](items []T, fns ...func(T) bool) bool {
	pred := truthy[T]
	if len(fns) > 0 {
		pred = fns[0]
	}
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}

func truthy[T comparable](item T) bool {
	var zero T
	return item != zero
}
