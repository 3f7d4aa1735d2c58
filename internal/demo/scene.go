// Package demo implements the harness scene: a number of sprites bouncing
// around the screen, respawned on every level.
package demo

import (
	"github.com/pavanmanishd/bitbound/arena"
	"github.com/pavanmanishd/bitbound/framebuffer"
	"github.com/pavanmanishd/bitbound/machine"
	"github.com/pavanmanishd/bitbound/pool"
	"github.com/pavanmanishd/bitbound/sprite"
	"github.com/pkg/errors"
)

// MaxActors is the pool capacity allocated per level.
const MaxActors = 32

// actor is stored in the Level arena and must stay pointer-free.
type actor struct {
	X, Y   int32
	VX, VY int16
}

// drawCmd is a per-tick draw list entry stored in the Frame arena.
type drawCmd struct {
	X, Y int32
}

// Scene owns no memory of its own; everything lives in the context arenas.
type Scene struct {
	sprite     *sprite.Sprite
	actors     int
	levelTicks uint64

	pool *pool.Pool[actor]
}

// Options configures a Scene.
type Options struct {
	Actors     int    // sprites per level, capped at MaxActors
	LevelTicks uint64 // ticks per level, 0 keeps the first level forever
}

// New copies the sprite data into the Global arena and returns the scene.
func New(c *machine.Context, s *sprite.Sprite, opts Options) (*Scene, error) {
	data, err := c.Memory.Global().AllocBytes(len(s.Data))
	if err != nil {
		return nil, errors.Wrap(err, "loading sprite")
	}
	copy(data, s.Data)

	resident, err := sprite.New(s.Width, s.Height, data)
	if err != nil {
		return nil, err
	}

	actors := opts.Actors
	if actors > MaxActors {
		actors = MaxActors
	}

	return &Scene{
		sprite:     resident,
		actors:     actors,
		levelTicks: opts.LevelTicks,
	}, nil
}

// Step advances the scene by one tick and renders it.
func (s *Scene) Step(c *machine.Context) error {
	if s.pool == nil || s.levelDue(c.Tick()) {
		if err := s.enterLevel(c, c.Level()+1); err != nil {
			return err
		}
	}

	s.update()
	return s.render(c)
}

// Live returns the number of actors in the current level.
func (s *Scene) Live() int {
	if s.pool == nil {
		return 0
	}
	return s.pool.Len()
}

func (s *Scene) levelDue(tick uint64) bool {
	return s.levelTicks > 0 && tick > 1 && (tick-1)%s.levelTicks == 0
}

// enterLevel resets the Level arena and spawns a fresh set of actors.
func (s *Scene) enterLevel(c *machine.Context, level int) error {
	c.EnterLevel(level)

	p, err := pool.New[actor](c.Memory.Level(), MaxActors)
	if err != nil {
		return errors.Wrapf(err, "entering level %d", level)
	}
	s.pool = p

	maxX := framebuffer.Width - s.sprite.Width
	maxY := framebuffer.Height - s.sprite.Height
	for i := 0; i < s.actors; i++ {
		seed := i*37 + level*101
		a := actor{
			X:  int32(positiveMod(seed*13, max(maxX, 1))),
			Y:  int32(positiveMod(seed*7, max(maxY, 1))),
			VX: int16(1 + i%3),
			VY: int16(1 + (i+level)%2),
		}
		if i%2 == 1 {
			a.VX = -a.VX
		}
		if _, err := s.pool.Spawn(a); err != nil {
			return errors.Wrapf(err, "spawning actor %d", i)
		}
	}
	return nil
}

// update moves every actor and bounces it off the screen edges. Actors may
// leave the screen by at most one step before turning around.
func (s *Scene) update() {
	maxX := int32(framebuffer.Width - s.sprite.Width)
	maxY := int32(framebuffer.Height - s.sprite.Height)

	items := s.pool.Items()
	for i := range items {
		a := &items[i]
		a.X += int32(a.VX)
		a.Y += int32(a.VY)
		if (a.X <= 0 && a.VX < 0) || (a.X >= maxX && a.VX > 0) {
			a.VX = -a.VX
		}
		if (a.Y <= 0 && a.VY < 0) || (a.Y >= maxY && a.VY > 0) {
			a.VY = -a.VY
		}
	}
}

// render builds the draw list in the Frame arena and blits it.
func (s *Scene) render(c *machine.Context) error {
	items := s.pool.Items()

	cmds, err := arena.AllocSlice[drawCmd](c.Memory.Frame(), len(items))
	if err != nil {
		return errors.Wrap(err, "allocating draw list")
	}
	for i, a := range items {
		cmds[i] = drawCmd{X: a.X, Y: a.Y}
	}

	c.Screen.Clear(0)
	for _, cmd := range cmds {
		c.Screen.DrawSprite(int(cmd.X), int(cmd.Y), s.sprite)
	}
	return nil
}

func positiveMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
