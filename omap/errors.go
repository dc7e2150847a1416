package omap

import (
	"fmt"

	"github.com/hasbyte1/go-seq-utils/seq"
)

// ErrNotList is returned when an operation requires a list-shaped map —
// keys exactly 0..Len()-1 in order — and the input is not one.
// It wraps [seq.ErrInvalidArgument].
var ErrNotList = fmt.Errorf("omap: keys are not a dense zero-based sequence (%w)", seq.ErrInvalidArgument)
