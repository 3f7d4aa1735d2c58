package config

import (
	"flag"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	assert.NoError(t, err)

	assert.Equal(t, uint64(600), cfg.Ticks)
	assert.Equal(t, 16*time.Millisecond, cfg.TickDuration)
	assert.Equal(t, uint64(240), cfg.LevelTicks)
	assert.Equal(t, 8, cfg.Actors)
	assert.Equal(t, 16, cfg.SpriteWidth)
	assert.Equal(t, "", cfg.SpritePath)
	assert.False(t, cfg.Debug)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("BITBOUND_TICKS", "10")
	t.Setenv("BITBOUND_TICK_DURATION", "1ms")
	t.Setenv("BITBOUND_SPRITE", "ship.2bpp")
	t.Setenv("BITBOUND_DEBUG", "true")

	cfg, err := ParseEnv()
	assert.NoError(t, err)

	assert.Equal(t, uint64(10), cfg.Ticks)
	assert.Equal(t, time.Millisecond, cfg.TickDuration)
	assert.Equal(t, "ship.2bpp", cfg.SpritePath)
	assert.True(t, cfg.Debug)
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("BITBOUND_TICKS", "many")

	_, err := ParseEnv()
	assert.ErrorContains(t, err, "parse env")
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BITBOUND_ACTORS", "3")

	cfg, err := ParseEnv()
	assert.NoError(t, err)

	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(flags, &cfg)
	assert.NoError(t, flags.Parse([]string{"-ticks", "5", "-o", "frame.png"}))

	assert.Equal(t, uint64(5), cfg.Ticks)
	assert.Equal(t, "frame.png", cfg.Snapshot)
	assert.Equal(t, 3, cfg.Actors)
}

func TestValidate(t *testing.T) {
	cfg, err := ParseEnv()
	assert.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.Actors = -1
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.SpritePath = "ship.2bpp"
	bad.SpriteWidth = 0
	assert.Error(t, bad.Validate())
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
	assert.NotNil(t, CreateLogger(false, false))
}
