package seq

import "cmp"

// Comparator is a two-argument ordering function: it returns a negative
// number when a orders before b, a positive number when a orders after b,
// and 0 for ties. Reporting ties as 0 matters: [Reversed] negates the
// result, and only a zero tie leaves equal elements where the stable sort
// found them — see [Natural].
type Comparator[T any] func(a, b T) int

// Natural returns the default comparator for ordered types: a true total
// order with ties reporting 0, as [cmp.Compare] defines it.
//
// The scripting-language filter sets this package is modelled on use a
// non-reflexive default that reports equal values as "a after b". That
// convention is deliberately not reproduced here: once [Reversed] negates
// the comparator, a never-zero result makes equal elements compare "before"
// each other in both directions and a stable sort then swaps them. Ties
// must reach the sort as 0 so that stability holds for ascending and
// descending orders alike.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// By wraps c so both operands are first transformed by key. It is the
// key-extraction step of comparator composition: the base comparator sees
// derived keys, never the original elements.
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Reversed negates c. Apply it last when composing: reversing must invert
// the effective (keyed) comparison, not the raw one.
func Reversed[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return -c(a, b)
	}
}
