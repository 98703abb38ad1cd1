package nuklear

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInFrame is returned by calls that need an open frame.
	ErrNotInFrame = errors.New("not in a frame")
	// ErrFrameActive is returned by BeginFrame while a frame is open.
	ErrFrameActive = errors.New("frame already active")
)

// InvariantError is the panic value for a broken bridge invariant: a stale
// handle, a pop without a push or a transform change after the first UI
// call. Err is the sentinel from the package that detected it.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("nuklear: invariant violated in %s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }
