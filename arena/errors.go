package arena

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfMemory is the only error kind an Arena produces. Every
// *AllocError unwraps to it.
var ErrOutOfMemory = errors.New("out of memory")

// AllocError describes a failed allocation.
type AllocError struct {
	Arena    string  // name of the arena that ran out
	Size     uintptr // requested size in bytes, ^uintptr(0) on overflow
	Align    uintptr // requested alignment
	Used     int     // cursor at the time of the request
	Capacity int     // arena capacity

	// Overflow is set when the size computation itself overflowed.
	Overflow bool
}

func (e *AllocError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("arena %q: %s: requested size overflows (align %d, %d/%d bytes used)",
			e.Arena, ErrOutOfMemory, e.Align, e.Used, e.Capacity)
	}
	return fmt.Sprintf("arena %q: %s: requested %d bytes (align %d, %d/%d bytes used)",
		e.Arena, ErrOutOfMemory, e.Size, e.Align, e.Used, e.Capacity)
}

// Unwrap returns ErrOutOfMemory.
func (e *AllocError) Unwrap() error {
	return ErrOutOfMemory
}

// IsOutOfMemory reports whether err is, or wraps, an allocation failure.
func IsOutOfMemory(err error) bool {
	return errors.Is(err, ErrOutOfMemory)
}
