// Package machine ties the runtime memory and the frame buffer together
// into one owning context that is threaded through the game loop.
//
// A Context has exactly one owner at a time. Nothing in this package takes
// locks on the per-tick path; exclusive access is established once, by
// whoever acquires the context, and then passed down the call chain.
package machine

import (
	"github.com/pavanmanishd/bitbound/framebuffer"
	"github.com/pavanmanishd/bitbound/memory"
)

// Context owns the process-wide runtime state.
type Context struct {
	Memory *memory.RuntimeMemory
	Screen *framebuffer.FrameBuffer

	tick  uint64
	level int
}

// NewContext allocates the full memory budget and a blank frame buffer.
func NewContext() *Context {
	return &Context{
		Memory: memory.New(),
		Screen: framebuffer.New(),
	}
}

// BeginTick starts a new simulated tick. The Frame arena is reset before
// anything else happens in the tick. It returns the new tick number,
// starting at 1.
func (c *Context) BeginTick() uint64 {
	c.Memory.ResetFrame()
	c.tick++
	return c.tick
}

// EnterLevel switches to the given level. The Level arena is reset before
// any level data is allocated.
func (c *Context) EnterLevel(level int) {
	c.Memory.ResetLevel()
	c.level = level
}

// Step runs fn as one tick.
func (c *Context) Step(fn func(*Context) error) error {
	c.BeginTick()
	return fn(c)
}

// Tick returns the number of the current tick, 0 before the first.
func (c *Context) Tick() uint64 {
	return c.tick
}

// Level returns the current level.
func (c *Context) Level() int {
	return c.level
}
