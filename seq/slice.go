package seq

// ─────────────────────────────────────────────────────────────────────────────
// Safe access
// ─────────────────────────────────────────────────────────────────────────────

// GetOr returns items[index], or fallback when index is out of range.
func GetOr[T any](items []T, index int, fallback T) T {
	if index < 0 || index >= len(items) {
		return fallback
	}
	return items[index]
}

// First returns the first element.
// Returns [ErrEmptySequence] when items is empty.
func First[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptySequence
	}
	return items[0], nil
}

// Last returns the last element.
// Returns [ErrEmptySequence] when items is empty.
func Last[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptySequence
	}
	return items[len(items)-1], nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a new slice with at most n elements from the start.
// A negative n takes elements from the end (Take(items, -3) ≡ last 3).
func Take[T any](items []T, n int) []T {
	total := len(items)
	if n < 0 {
		start := total + n
		if start < 0 {
			start = 0
		}
		return clone(items[start:])
	}
	if n > total {
		n = total
	}
	return clone(items[:n])
}

// Drop returns a new slice without the first n elements.
// A negative n drops elements counted from the end.
func Drop[T any](items []T, n int) []T {
	total := len(items)
	if n < 0 {
		end := total + n
		if end < 0 {
			end = 0
		}
		return clone(items[:end])
	}
	if n >= total {
		return []T{}
	}
	return clone(items[n:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Concatenation & pairing
// ─────────────────────────────────────────────────────────────────────────────

// Extend returns a new slice with all elements of a followed by all
// elements of b. Neither input is modified.
func Extend[T any](a, b []T) []T {
	out := make([]T, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// Pairs returns the (index, value) pairs of items in order.
func Pairs[T any](items []T) []Pair[int, T] {
	out := make([]Pair[int, T], len(items))
	for i, item := range items {
		out[i] = Pair[int, T]{First: i, Second: item}
	}
	return out
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
