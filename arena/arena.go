package arena

import "unsafe"

// wordSize is the alignment of the backing storage base address.
const wordSize = unsafe.Sizeof(uint64(0))

// Arena is a fixed-capacity bump allocator. Not goroutine-safe.
type Arena struct {
	name   string
	words  []uint64 // keeps the backing memory 8-byte aligned
	buf    []byte   // byte view over words, len(buf) == capacity
	used   int
	peak   int
	resets int
}

// New creates an Arena with the given capacity in bytes.
// The backing storage is allocated once and zero-filled.
// A negative capacity is treated as 0.
func New(name string, capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	words := make([]uint64, (capacity+int(wordSize)-1)/int(wordSize))
	a := &Arena{
		name:  name,
		words: words,
	}
	if capacity > 0 {
		a.buf = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), capacity)
	}
	return a
}

// AllocBytes returns n zeroed bytes from the arena with alignment 1.
// n == 0 returns an empty slice without moving the cursor.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, a.overflow(1)
	}
	if n == 0 {
		return []byte{}, nil
	}
	off, err := a.reserve(uintptr(n), 1)
	if err != nil {
		return nil, err
	}
	b := a.buf[off : off+n : off+n]
	clear(b)
	return b, nil
}

// Reset sets the cursor back to zero. Every allocation handed out before
// the call is invalid afterwards. The buffer contents are left as they are.
func (a *Arena) Reset() {
	a.used = 0
	a.resets++
}

// reserve advances the cursor past an aligned block of size bytes and
// returns the block offset. align must be a power of two.
func (a *Arena) reserve(size, align uintptr) (int, error) {
	capacity := uintptr(len(a.buf))
	used := uintptr(a.used)

	start := AlignUp(used, align)
	if start < used || start > capacity || size > capacity-start {
		return 0, &AllocError{
			Arena:    a.name,
			Size:     size,
			Align:    align,
			Used:     a.used,
			Capacity: len(a.buf),
		}
	}

	a.used = int(start + size)
	if a.used > a.peak {
		a.peak = a.used
	}
	return int(start), nil
}

// pointer returns the address of the byte at offset off.
// off must be < Capacity().
func (a *Arena) pointer(off int) unsafe.Pointer {
	return unsafe.Pointer(&a.buf[off])
}

// overflow builds the error reported when the requested size cannot be
// represented.
func (a *Arena) overflow(align uintptr) *AllocError {
	return &AllocError{
		Arena:    a.name,
		Size:     ^uintptr(0),
		Align:    align,
		Used:     a.used,
		Capacity: len(a.buf),
		Overflow: true,
	}
}

// AlignUp rounds n up to the next multiple of align.
// align must be a power of two. The result wraps on overflow; callers
// compare it against n to detect that.
func AlignUp(n, align uintptr) uintptr {
	mask := align - 1
	return (n + mask) &^ mask
}
