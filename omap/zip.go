package omap

import "github.com/hasbyte1/go-seq-utils/seq"

// ZipValues aligns the values of any number of maps index-by-index,
// discarding keys: each input is normalized to its values in insertion
// order, then zipped with [seq.ZipMany], truncating at the shortest input.
func ZipValues[K comparable, V any](ms ...*Map[K, V]) [][]V {
	lists := make([][]V, len(ms))
	for i, m := range ms {
		lists[i] = m.Values()
	}
	return seq.ZipMany(lists...)
}
