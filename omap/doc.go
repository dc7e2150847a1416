// Package omap provides a generic, insertion-ordered associative collection
// and the keyed counterparts of the seq package's operations: sorting that
// keeps keys attached to values, grouping/indexing slices into ordered maps,
// element repositioning, and value zipping.
//
// # Ordered maps
//
// The central type is [Map][K, V]: a mapping whose iteration order is the
// order in which keys were first inserted. Updating an existing key changes
// its value but not its position.
//
//	m := omap.New[string, int]()
//	m.Set("b", 2)
//	m.Set("a", 1)
//	m.Keys() // → ["b", "a"]
//
// # Lists vs. maps
//
// A Map whose keys are exactly the ints 0..Len()-1 in order is a "list"
// ([Map.IsList]). Operations that reorder elements use this distinction:
// [SortedWith] re-densifies a list's keys to 0..n-1 after sorting, while a
// general map keeps its original keys attached to their values; and
// [MoveElement] refuses to operate on anything but a list.
//
// # Grouping and indexing
//
// [Index] and [Group] build an ordered map from a slice, keyed either by a
// derived value or — via [IndexField] / [GroupField] — by a literal field of
// record-like items, silently skipping items that lack the field. Key order
// in the result follows first encounter.
//
// # Immutability
//
// As in package seq, every transforming operation returns a new Map and
// leaves its input untouched.
package omap
