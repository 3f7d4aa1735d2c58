// Package arena implements a fixed-capacity bump allocator (memory arena).
//
// # Overview
//
// An Arena owns one contiguous byte region that is allocated once, up front,
// and never grows. Allocations are handed out sequentially from a cursor and
// are reclaimed all at once by Reset. There is no per-object free.
//
// This makes the arena a good fit for:
//
//   - Per-tick scratch data that dies at the end of a simulated frame
//   - Level assets that live until the next level transition
//   - Fixed-size object pools whose capacity is known ahead of time
//
// # Basic Usage
//
//	a := arena.New("frame", 64*1024)
//
//	// Allocate typed values (zeroed)
//	pos, err := arena.Alloc[Vec2](a)
//	if err != nil {
//		return err // *arena.AllocError, wraps arena.ErrOutOfMemory
//	}
//
//	// Allocate a slice
//	particles, err := arena.AllocSlice[Particle](a, 128)
//
//	// Reclaim everything (O(1), memory is not cleared)
//	a.Reset()
//
// # Memory Layout
//
// Every allocation starts at the cursor rounded up to the alignment of the
// requested type, computed as (n + align - 1) &^ (align - 1). The backing
// storage is 8-byte aligned at its base, so an aligned offset is also an
// aligned address for every Go type.
//
// # Error Handling
//
// Exhaustion is reported, never retried: Alloc and AllocSlice return an
// *AllocError naming the arena and the requested size. Size arithmetic that
// would overflow is reported the same way. The arena never panics on an
// allocation failure.
//
// # Important Notes
//
//   - The arena is not goroutine-safe and takes no locks; it has one owner.
//   - Allocations are only valid until the next Reset.
//   - Reset does not clear the buffer. Every fresh allocation is zeroed.
//   - Types stored in an arena must not contain Go pointers, the garbage
//     collector does not scan arena memory.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("%s: %d/%d bytes (peak %d)\n", m.Name, m.Used, m.Capacity, m.Peak)
package arena
