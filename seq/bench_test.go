package seq_test

import (
	"math/rand"
	"testing"

	"github.com/hasbyte1/go-seq-utils/seq"
)

func randomInts(n int) []int {
	r := rand.New(rand.NewSource(1))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Int()
	}
	return out
}

func BenchmarkSorted(b *testing.B) {
	items := randomInts(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.Sorted(items)
	}
}

func BenchmarkSortedBy(b *testing.B) {
	items := randomInts(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.SortedBy(items, func(n int) int { return -n })
	}
}

func BenchmarkZipMany(b *testing.B) {
	a := randomInts(1000)
	c := randomInts(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.ZipMany(a, c)
	}
}

func BenchmarkMoveElement(b *testing.B) {
	items := randomInts(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seq.MoveElement(items, 10, 990)
	}
}
