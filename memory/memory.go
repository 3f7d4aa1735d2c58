// Package memory partitions the runtime's fixed memory budget into three
// arenas with different reset lifecycles.
//
// The Global arena lives for the whole process. The Level arena is reset on
// every level transition. The Frame arena is reset at the start of every
// simulated tick, before any other per-tick work. Resetting one of these
// arenas is the only way memory is ever reclaimed.
package memory

import "github.com/pavanmanishd/bitbound/arena"

// Partition capacities in bytes.
const (
	GlobalCapacity = 256 * 1024
	LevelCapacity  = 512 * 1024
	FrameCapacity  = 256 * 1024

	TotalCapacity = 1024 * 1024
)

// The partitions must add up to TotalCapacity exactly; either array
// length goes negative and fails to compile otherwise.
var (
	_ [TotalCapacity - (GlobalCapacity + LevelCapacity + FrameCapacity)]struct{}
	_ [(GlobalCapacity + LevelCapacity + FrameCapacity) - TotalCapacity]struct{}
)

// Arena names as reported in errors and telemetry.
const (
	GlobalName = "global"
	LevelName  = "level"
	FrameName  = "frame"
)

// RuntimeMemory owns the three partitions. It has a single owner and is not
// goroutine-safe.
type RuntimeMemory struct {
	global *arena.Arena
	level  *arena.Arena
	frame  *arena.Arena
}

// New allocates the full memory budget up front.
func New() *RuntimeMemory {
	return &RuntimeMemory{
		global: arena.New(GlobalName, GlobalCapacity),
		level:  arena.New(LevelName, LevelCapacity),
		frame:  arena.New(FrameName, FrameCapacity),
	}
}

// Global returns the process-lifetime arena. It is never reset during play.
func (m *RuntimeMemory) Global() *arena.Arena { return m.global }

// Level returns the arena reset on level transitions.
func (m *RuntimeMemory) Level() *arena.Arena { return m.level }

// Frame returns the arena reset at the start of every tick.
func (m *RuntimeMemory) Frame() *arena.Arena { return m.frame }

// ResetLevel invalidates everything allocated from the Level arena.
// It must be called before the first Level allocation of a new level.
func (m *RuntimeMemory) ResetLevel() {
	m.level.Reset()
}

// ResetFrame invalidates everything allocated from the Frame arena.
// It must be called once per tick before any Frame allocation.
func (m *RuntimeMemory) ResetFrame() {
	m.frame.Reset()
}

// Capacity returns the combined capacity of all partitions.
func (m *RuntimeMemory) Capacity() int {
	return m.global.Capacity() + m.level.Capacity() + m.frame.Capacity()
}

// Used returns the combined cursor position of all partitions.
func (m *RuntimeMemory) Used() int {
	return m.global.Used() + m.level.Used() + m.frame.Used()
}

// Telemetry is a read-only snapshot of all partitions, used by debug
// displays and periodic logging.
type Telemetry struct {
	Global arena.Metrics
	Level  arena.Metrics
	Frame  arena.Metrics
}

// Telemetry returns the current partition metrics without side effects.
func (m *RuntimeMemory) Telemetry() Telemetry {
	return Telemetry{
		Global: m.global.Metrics(),
		Level:  m.level.Metrics(),
		Frame:  m.frame.Metrics(),
	}
}

// Arenas returns the partitions in Global, Level, Frame order.
func (t Telemetry) Arenas() [3]arena.Metrics {
	return [3]arena.Metrics{t.Global, t.Level, t.Frame}
}
