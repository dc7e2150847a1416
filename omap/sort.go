package omap

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-seq-utils/seq"
)

// Sorted returns a new map with entries in ascending natural value order.
func Sorted[K comparable, V cmp.Ordered](m *Map[K, V]) *Map[K, V] {
	return SortedWith(m, seq.Natural[V]())
}

// SortedDesc returns a new map with entries in descending natural value
// order.
func SortedDesc[K comparable, V cmp.Ordered](m *Map[K, V]) *Map[K, V] {
	return SortedWith(m, seq.Reversed(seq.Natural[V]()))
}

// SortedBy returns a new map with entries sorted ascending by the key
// extracted from each value by key.
func SortedBy[K comparable, V any, S cmp.Ordered](m *Map[K, V], key func(V) S) *Map[K, V] {
	return SortedWith(m, seq.By(key, seq.Natural[S]()))
}

// SortedByDesc returns a new map with entries sorted descending by the key
// extracted from each value by key.
func SortedByDesc[K comparable, V any, S cmp.Ordered](m *Map[K, V], key func(V) S) *Map[K, V] {
	return SortedWith(m, seq.Reversed(seq.By(key, seq.Natural[S]())))
}

// SortedWith returns a new map with entries stably sorted by applying c to
// the values; keys travel with their values through the sort.
//
// When the input is list-shaped ([Map.IsList]) the result is re-densified:
// its keys become 0..Len()-1 in the new value order and the original keys
// are discarded. Otherwise the original keys are preserved, reordered
// according to the new value order. The input map is never modified.
func SortedWith[K comparable, V any](m *Map[K, V], c seq.Comparator[V]) *Map[K, V] {
	type entry struct {
		key   K
		value V
	}
	entries := make([]entry, 0, m.Len())
	for _, k := range m.keys {
		entries = append(entries, entry{key: k, value: m.values[k]})
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return c(a.value, b.value) })

	out := New[K, V]()
	if m.IsList() {
		for i, e := range entries {
			// IsList guarantees the keys are ints, so the assertion
			// cannot fail for a non-empty map.
			k, _ := any(i).(K)
			out.Set(k, e.value)
		}
		return out
	}
	for _, e := range entries {
		out.Set(e.key, e.value)
	}
	return out
}
