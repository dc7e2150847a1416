package seq

import (
	"cmp"
	"slices"
)

// Sorted returns a copy of items in ascending natural order.
func Sorted[T cmp.Ordered](items []T) []T {
	return SortedWith(items, Natural[T]())
}

// SortedDesc returns a copy of items in descending natural order.
func SortedDesc[T cmp.Ordered](items []T) []T {
	return SortedWith(items, Reversed(Natural[T]()))
}

// SortedBy returns a copy of items sorted ascending by the key extracted
// by key.
func SortedBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return SortedWith(items, By(key, Natural[K]()))
}

// SortedByDesc returns a copy of items sorted descending by the key
// extracted by key.
func SortedByDesc[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return SortedWith(items, Reversed(By(key, Natural[K]())))
}

// SortedWith returns a copy of items sorted by the comparator c.
// The sort is stable: elements c considers equal keep their original
// relative order. The input slice is never modified.
func SortedWith[T any](items []T, c Comparator[T]) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, c)
	return out
}
