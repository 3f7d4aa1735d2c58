package arena

import "unsafe"

// Alloc returns a pointer to a zeroed T stored inside the arena.
// The pointer is valid until the next Reset. T must not contain Go pointers.
func Alloc[T any](a *Arena) (*T, error) {
	var p *T // *p is not evaluated by Sizeof or Alignof
	size, align := unsafe.Sizeof(*p), unsafe.Alignof(*p)

	off, err := a.reserve(size, align)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		// Nothing to point into; a zero-size value needs no storage.
		return new(T), nil
	}

	clear(a.buf[off : off+int(size)])
	return (*T)(a.pointer(off)), nil
}

// AllocSlice allocates a zeroed slice of count elements of type T inside
// the arena. count == 0 returns an empty slice without moving the cursor.
// A negative count, or a size that overflows, is reported as out of memory.
func AllocSlice[T any](a *Arena, count int) ([]T, error) {
	var p *T
	elem, align := unsafe.Sizeof(*p), unsafe.Alignof(*p)

	if count < 0 {
		return nil, a.overflow(align)
	}
	if count == 0 {
		return []T{}, nil
	}
	if elem != 0 && uintptr(count) > ^uintptr(0)/elem {
		return nil, a.overflow(align)
	}
	size := elem * uintptr(count)

	off, err := a.reserve(size, align)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return make([]T, count), nil
	}

	clear(a.buf[off : off+int(size)])
	return unsafe.Slice((*T)(a.pointer(off)), count), nil
}
