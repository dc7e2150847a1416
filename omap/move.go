package omap

import "github.com/hasbyte1/go-seq-utils/seq"

// MoveElement returns a new list-shaped map with the element at index from
// relocated to index to; elements between the two positions shift by one
// and all other relative order is preserved. The result's keys are
// 0..Len()-1 as in any list.
//
// Returns [ErrNotList] when m is not list-shaped and
// [seq.ErrIndexOutOfRange] when from or to is not a valid index.
// from == to is a no-op, not an error. The input map is never modified.
func MoveElement[K comparable, V any](m *Map[K, V], from, to int) (*Map[K, V], error) {
	if !m.IsList() {
		return nil, ErrNotList
	}
	values, err := seq.MoveElement(m.Values(), from, to)
	if err != nil {
		return nil, err
	}
	out := New[K, V]()
	for i, v := range values {
		k, _ := any(i).(K)
		out.Set(k, v)
	}
	return out, nil
}
