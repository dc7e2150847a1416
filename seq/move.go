package seq

// MoveElement returns a new slice with the element at index from relocated
// to index to. Elements between the two positions shift by one to close and
// open the gap; the relative order of all other elements is preserved.
//
// from == to is a no-op and returns a copy of items. An out-of-range from
// or to returns [ErrIndexOutOfRange]; the input is never modified.
func MoveElement[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	if to < 0 || to >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := clone(items)
	if from == to {
		return out, nil
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, nil
}
