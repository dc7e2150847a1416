package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-seq-utils/seq"
)

func TestFlatten(t *testing.T) {
	nested := []any{1, []any{2, []any{3, 4}}, 5}
	assert.Equal(t, []any{1, 2, 3, 4, 5}, seq.Flatten(nested))
}

func TestFlattenScalar(t *testing.T) {
	assert.Equal(t, []any{"x"}, seq.Flatten("x"))
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, seq.Flatten([]any{}))
	assert.Empty(t, seq.Flatten([]any{[]any{}, []any{[]any{}}}))
}
