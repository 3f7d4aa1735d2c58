package pool

import (
	"testing"

	"github.com/pavanmanishd/bitbound/arena"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

type enemy struct {
	X, Y int32
	VX   int16
}

func TestNew(t *testing.T) {
	a := arena.New("level", 1024)

	p, err := New[enemy](a, 32)
	assert.NoError(t, err)
	assert.Equal(t, 32, p.Cap())
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, len(p.Items()))
	assert.True(t, a.Used() > 0)
}

func TestNewOutOfMemory(t *testing.T) {
	a := arena.New("level", 16)

	_, err := New[enemy](a, 32)
	assert.True(t, arena.IsOutOfMemory(err))

	var allocErr *arena.AllocError
	assert.True(t, errors.As(err, &allocErr))
	assert.Equal(t, "level", allocErr.Arena)
}

func TestSpawnUntilFull(t *testing.T) {
	a := arena.New("level", 1024)
	p, err := New[enemy](a, 3)
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		index, err := p.Spawn(enemy{X: int32(i)})
		assert.NoError(t, err)
		assert.Equal(t, i, index)
	}

	_, err = p.Spawn(enemy{X: 99})
	assert.True(t, errors.Is(err, ErrFull))
	assert.Equal(t, 3, p.Len())
}

func TestDespawnSwapsLast(t *testing.T) {
	a := arena.New("level", 1024)
	p, err := New[enemy](a, 4)
	assert.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := p.Spawn(enemy{X: int32(i)})
		assert.NoError(t, err)
	}

	p.Despawn(1)
	assert.Equal(t, 3, p.Len())
	assertXs(t, p, 0, 3, 2)

	// Out of range indexes are ignored.
	p.Despawn(3)
	p.Despawn(-1)
	assert.Equal(t, 3, p.Len())

	p.Despawn(2)
	assertXs(t, p, 0, 3)

	// Freed slots are reused.
	index, err := p.Spawn(enemy{X: 7})
	assert.NoError(t, err)
	assert.Equal(t, 2, index)
}

func TestItemsAreMutable(t *testing.T) {
	a := arena.New("level", 1024)
	p, err := New[enemy](a, 2)
	assert.NoError(t, err)

	_, err = p.Spawn(enemy{X: 1, VX: 2})
	assert.NoError(t, err)

	for i := range p.Items() {
		e := &p.Items()[i]
		e.X += int32(e.VX)
	}
	assert.Equal(t, int32(3), p.Items()[0].X)

	p.Clear()
	assert.Equal(t, 0, p.Len())
}

func assertXs(t *testing.T, p *Pool[enemy], xs ...int32) {
	t.Helper()
	items := p.Items()
	assert.Len(t, items, len(xs))
	for i, x := range xs {
		assert.Equal(t, x, items[i].X)
	}
}
