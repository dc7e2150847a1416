package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-seq-utils/seq"
)

func TestMoveElementForward(t *testing.T) {
	got, err := seq.MoveElement([]string{"a", "b", "c", "d"}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d", "b"}, got)
}

func TestMoveElementBackward(t *testing.T) {
	got, err := seq.MoveElement([]string{"a", "b", "c", "d"}, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a", "b", "c"}, got)
}

func TestMoveElementSamePosition(t *testing.T) {
	in := []int{1, 2, 3}
	got, err := seq.MoveElement(in, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestMoveElementDoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4}
	_, err := seq.MoveElement(in, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, in)
}

func TestMoveElementOutOfRange(t *testing.T) {
	_, err := seq.MoveElement([]int{1, 2, 3}, 5, 0)
	require.ErrorIs(t, err, seq.ErrIndexOutOfRange)
	assert.ErrorIs(t, err, seq.ErrInvalidArgument)

	_, err = seq.MoveElement([]int{1, 2, 3}, 0, -1)
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)

	_, err = seq.MoveElement([]int{}, 0, 0)
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)
}
