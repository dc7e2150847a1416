package seq

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip] and [Pairs].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip combines two slices element-by-element into Pairs, stopping at the
// length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// ZipMany aligns any number of slices index-by-index. Tuple i contains
// lists[j][i] for every input j, in argument order; the output is truncated
// to the length of the shortest input. With no inputs the result is empty.
func ZipMany[T any](lists ...[]T) [][]T {
	if len(lists) == 0 {
		return [][]T{}
	}
	n := len(lists[0])
	for _, list := range lists[1:] {
		if len(list) < n {
			n = len(list)
		}
	}
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		tuple := make([]T, len(lists))
		for j, list := range lists {
			tuple[j] = list[i]
		}
		out[i] = tuple
	}
	return out
}
