package omap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seq-utils/omap"
)

func TestZipValuesDiscardsKeys(t *testing.T) {
	a := omap.New[string, int]()
	a.Set("x", 1)
	a.Set("y", 2)
	a.Set("z", 3)

	b := omap.New[string, int]()
	b.Set("p", 4)
	b.Set("q", 5)

	got := omap.ZipValues(a, b)
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 4}, got[0])
	assert.Equal(t, []int{2, 5}, got[1])
}

func TestZipValuesMixedShapes(t *testing.T) {
	// A list-shaped map and a sparse one zip the same way: keys are
	// discarded and values taken in iteration order.
	list := omap.New[int, string]()
	list.Set(0, "a")
	list.Set(1, "b")

	sparse := omap.New[int, string]()
	sparse.Set(7, "x")
	sparse.Set(3, "y")
	sparse.Set(9, "z")

	got := omap.ZipValues(list, sparse)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "x"}, got[0])
	assert.Equal(t, []string{"b", "y"}, got[1])
}

func TestZipValuesWithEmptyMap(t *testing.T) {
	a := omap.New[string, int]()
	a.Set("x", 1)
	assert.Empty(t, omap.ZipValues(a, omap.New[string, int]()))
}
