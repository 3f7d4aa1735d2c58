package memory

import (
	"testing"

	"github.com/pavanmanishd/bitbound/arena"
	"github.com/retroenv/retrogolib/assert"
)

func TestCapacities(t *testing.T) {
	m := New()

	assert.Equal(t, GlobalCapacity, m.Global().Capacity())
	assert.Equal(t, LevelCapacity, m.Level().Capacity())
	assert.Equal(t, FrameCapacity, m.Frame().Capacity())
	assert.Equal(t, 1_048_576, m.Global().Capacity()+m.Level().Capacity()+m.Frame().Capacity())
	assert.Equal(t, TotalCapacity, m.Capacity())
	assert.Equal(t, 0, m.Used())
}

func TestArenaNames(t *testing.T) {
	m := New()

	assert.Equal(t, GlobalName, m.Global().Name())
	assert.Equal(t, LevelName, m.Level().Name())
	assert.Equal(t, FrameName, m.Frame().Name())
}

func TestResetFrameLeavesOtherPartitions(t *testing.T) {
	m := New()

	_, err := arena.AllocSlice[byte](m.Global(), 10)
	assert.NoError(t, err)
	_, err = arena.AllocSlice[byte](m.Level(), 20)
	assert.NoError(t, err)
	_, err = arena.AllocSlice[byte](m.Frame(), 30)
	assert.NoError(t, err)
	assert.Equal(t, 60, m.Used())

	m.ResetFrame()

	assert.Equal(t, 10, m.Global().Used())
	assert.Equal(t, 20, m.Level().Used())
	assert.Equal(t, 0, m.Frame().Used())
}

func TestResetLevelLeavesOtherPartitions(t *testing.T) {
	m := New()

	_, err := arena.AllocSlice[byte](m.Global(), 10)
	assert.NoError(t, err)
	_, err = arena.AllocSlice[byte](m.Level(), 20)
	assert.NoError(t, err)
	_, err = arena.AllocSlice[byte](m.Frame(), 30)
	assert.NoError(t, err)

	m.ResetLevel()

	assert.Equal(t, 10, m.Global().Used())
	assert.Equal(t, 0, m.Level().Used())
	assert.Equal(t, 30, m.Frame().Used())
}

func TestFrameExhaustionIsReported(t *testing.T) {
	m := New()

	_, err := arena.AllocSlice[byte](m.Frame(), FrameCapacity)
	assert.NoError(t, err)

	_, err = arena.Alloc[byte](m.Frame())
	assert.True(t, arena.IsOutOfMemory(err))
	assert.ErrorContains(t, err, `arena "frame"`)

	// The next tick starts with a clean partition.
	m.ResetFrame()
	_, err = arena.Alloc[byte](m.Frame())
	assert.NoError(t, err)
}

func TestTelemetry(t *testing.T) {
	m := New()

	_, err := arena.AllocSlice[uint32](m.Level(), 16)
	assert.NoError(t, err)
	m.ResetFrame()
	m.ResetFrame()

	tel := m.Telemetry()
	assert.Equal(t, 64, tel.Level.Used)
	assert.Equal(t, LevelCapacity, tel.Level.Capacity)
	assert.Equal(t, 2, tel.Frame.Resets)
	assert.Equal(t, 0, tel.Global.Used)

	arenas := tel.Arenas()
	assert.Equal(t, GlobalName, arenas[0].Name)
	assert.Equal(t, LevelName, arenas[1].Name)
	assert.Equal(t, FrameName, arenas[2].Name)
}
