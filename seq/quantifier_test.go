package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-seq-utils/seq"
)

func TestAllTruthy(t *testing.T) {
	assert.True(t, seq.All([]int{1, 2, 3}))
	assert.False(t, seq.All([]int{1, 0, 3}))
	assert.False(t, seq.All([]string{"a", ""}))
}

func TestAllVacuouslyTrueOnEmpty(t *testing.T) {
	assert.True(t, seq.All([]int{}))
	assert.True(t, seq.All([]int{}, func(int) bool { return false }))
}

func TestAllWithPredicate(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.True(t, seq.All([]int{2, 4, 6}, even))
	assert.False(t, seq.All([]int{2, 3, 6}, even))
}

func TestAnyTruthy(t *testing.T) {
	assert.True(t, seq.Any([]int{0, 0, 3}))
	assert.False(t, seq.Any([]int{0, 0, 0}))
	assert.True(t, seq.Any([]string{"", "x"}))
}

func TestAnyVacuouslyFalseOnEmpty(t *testing.T) {
	assert.False(t, seq.Any([]int{}))
	assert.False(t, seq.Any([]int{}, func(int) bool { return true }))
}

func TestAnyWithPredicate(t *testing.T) {
	negative := func(n int) bool { return n < 0 }
	assert.True(t, seq.Any([]int{3, -1, 2}, negative))
	assert.False(t, seq.Any([]int{3, 1, 2}, negative))
}
