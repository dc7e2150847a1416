package seq

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of the package's error taxonomy. Every
// failure a helper can return wraps it, so callers may match the whole
// family with errors.Is(err, seq.ErrInvalidArgument).
var ErrInvalidArgument = errors.New("seq: invalid argument")

var (
	// ErrIndexOutOfRange is returned when an index is outside [0, len-1].
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrEmptySequence is returned by First / Last when the sequence has
	// no elements.
	ErrEmptySequence = fmt.Errorf("%w: empty sequence", ErrInvalidArgument)
)
