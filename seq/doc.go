// Package seq provides standalone, framework-agnostic helper functions for
// Go slices, inspired by the sequence filter sets of scripting and template
// languages (sorted, zip, take/drop, flatten, and friends).
//
// # Lists
//
// A plain Go slice plays the role of a "list": a dense, zero-based sequence
// whose order is significant. All helpers are generic (Go 1.18+) and pure —
// every operation returns a new slice and never mutates its input:
//
//	evens := seq.Take(seq.Sorted(nums), 3)
//	both  := seq.Zip([]string{"a", "b"}, []int{1, 2}) // → [(a,1), (b,2)]
//	moved, err := seq.MoveElement([]string{"a", "b", "c", "d"}, 1, 3)
//	// → ["a", "c", "d", "b"]
//
// # Comparator composition
//
// Sorting is driven by a [Comparator], built up from three optional parts:
// a base comparator ([Natural] when none is given), a key extractor ([By]),
// and a reversal ([Reversed]). Key extraction wraps the base comparator
// first and reversal wraps the result last, so a descending keyed sort
// inverts the keyed comparison rather than the raw one:
//
//	byAge := seq.SortedByDesc(people, func(p Person) int { return p.Age })
//	// equivalent to:
//	byAge := seq.SortedWith(people,
//	    seq.Reversed(seq.By(func(p Person) int { return p.Age }, seq.Natural[int]())))
//
// All sorts are stable: elements the comparator considers equal keep their
// original relative order.
//
// # Errors
//
// Structurally invalid input (out-of-range index, empty sequence where one
// element is required) is reported through sentinel errors that all wrap
// [ErrInvalidArgument]. Short inputs to [Zip] and similar conditions are
// documented policy outcomes (truncate, skip), not errors.
//
// # Associative collections
//
// Operations over keyed, insertion-ordered collections live in the sibling
// omap package, which builds on the comparators and pairs defined here.
package seq
