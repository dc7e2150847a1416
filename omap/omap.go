package omap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hasbyte1/go-seq-utils/seq"
)

// Map is a generic associative collection that preserves insertion order.
// Setting an existing key updates its value in place; the key keeps the
// position it was first inserted at.
//
// The zero Map is not ready for use; create one with [New] or [FromPairs].
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		keys:   []K{},
		values: make(map[K]V),
	}
}

// FromPairs creates an ordered map from key/value pairs, applied in order.
// Duplicate keys keep their first position with the last value.
func FromPairs[K comparable, V any](pairs []seq.Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors & mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key. A new key is appended to the iteration order;
// an existing key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key together with a presence flag.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

// GetOr returns the value stored under key, or fallback when key is absent.
func (m *Map[K, V]) GetOr(key K, fallback V) V {
	if value, ok := m.values[key]; ok {
		return value
	}
	return fallback
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & pairing
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over the entries in insertion order.
//
//	for k, v := range m.All() { ... }
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Pairs returns the (key, value) pairs in insertion order.
func (m *Map[K, V]) Pairs() []seq.Pair[K, V] {
	out := make([]seq.Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = seq.Pair[K, V]{First: k, Second: m.values[k]}
	}
	return out
}

// PairsFlipped returns the (value, key) pairs in insertion order.
func (m *Map[K, V]) PairsFlipped() []seq.Pair[V, K] {
	out := make([]seq.Pair[V, K], len(m.keys))
	for i, k := range m.keys {
		out[i] = seq.Pair[V, K]{First: m.values[k], Second: k}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Shape
// ─────────────────────────────────────────────────────────────────────────────

// IsList reports whether the keys are exactly the ints 0..Len()-1 in
// insertion order. An empty map is vacuously a list.
func (m *Map[K, V]) IsList() bool {
	for i, k := range m.keys {
		n, ok := any(k).(int)
		if !ok || n != i {
			return false
		}
	}
	return true
}

// String returns a human-readable representation in insertion order:
// "{k1: v1, k2: v2}". It implements [fmt.Stringer].
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", k, m.values[k])
	}
	b.WriteByte('}')
	return b.String()
}
