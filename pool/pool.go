// Package pool provides fixed-capacity object pools whose slots live in an
// arena. A pool never grows; spawning into a full pool fails.
package pool

import (
	"github.com/pavanmanishd/bitbound/arena"
	"github.com/pkg/errors"
)

// ErrFull is returned by Spawn when every slot is in use.
var ErrFull = errors.New("pool is full")

// Pool keeps its live items packed in the first Len() slots. Despawning
// moves the last live item into the freed slot, so indexes are not stable
// across Despawn calls.
//
// The slots are invalid once the backing arena is reset, together with the
// pool itself. T must not contain Go pointers.
type Pool[T any] struct {
	items []T
	len   int
}

// New allocates capacity slots from a.
func New[T any](a *arena.Arena, capacity int) (*Pool[T], error) {
	items, err := arena.AllocSlice[T](a, capacity)
	if err != nil {
		return nil, errors.Wrapf(err, "allocating pool of %d slots", capacity)
	}
	return &Pool[T]{items: items}, nil
}

// Spawn stores item in the next free slot and returns its index.
func (p *Pool[T]) Spawn(item T) (int, error) {
	if p.len >= len(p.items) {
		return 0, ErrFull
	}
	index := p.len
	p.items[index] = item
	p.len++
	return index, nil
}

// Despawn removes the item at index by moving the last live item into its
// slot. An index outside the live range is ignored.
func (p *Pool[T]) Despawn(index int) {
	if index < 0 || index >= p.len {
		return
	}
	p.len--
	p.items[index] = p.items[p.len]
}

// Items returns the live items. The slice aliases the pool storage.
func (p *Pool[T]) Items() []T {
	return p.items[:p.len]
}

// Len returns the number of live items.
func (p *Pool[T]) Len() int {
	return p.len
}

// Cap returns the fixed number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// Clear despawns every item.
func (p *Pool[T]) Clear() {
	p.len = 0
}
