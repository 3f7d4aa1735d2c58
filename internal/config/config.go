// Package config handles application configuration and setup
package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// Config contains the harness settings. Environment variables provide the
// defaults, command line flags override them.
type Config struct {
	Ticks          uint64        `env:"BITBOUND_TICKS" envDefault:"600"`
	TickDuration   time.Duration `env:"BITBOUND_TICK_DURATION" envDefault:"16ms"`
	LevelTicks     uint64        `env:"BITBOUND_LEVEL_TICKS" envDefault:"240"`
	Actors         int           `env:"BITBOUND_ACTORS" envDefault:"8"`
	TelemetryEvery uint64        `env:"BITBOUND_TELEMETRY_EVERY" envDefault:"60"`

	SpritePath   string `env:"BITBOUND_SPRITE"`
	SpriteWidth  int    `env:"BITBOUND_SPRITE_WIDTH" envDefault:"16"`
	SpriteHeight int    `env:"BITBOUND_SPRITE_HEIGHT" envDefault:"16"`

	Snapshot string `env:"BITBOUND_SNAPSHOT"`

	Debug bool `env:"BITBOUND_DEBUG"`
	Quiet bool `env:"BITBOUND_QUIET"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// RegisterFlags binds command line flags to cfg, using its current values
// as defaults.
func RegisterFlags(flags *flag.FlagSet, cfg *Config) {
	flags.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "number of ticks to simulate, 0 runs until interrupted")
	flags.DurationVar(&cfg.TickDuration, "tick", cfg.TickDuration, "fixed duration of one tick")
	flags.Uint64Var(&cfg.LevelTicks, "level-ticks", cfg.LevelTicks, "ticks per level before switching to the next one, 0 never switches")
	flags.IntVar(&cfg.Actors, "actors", cfg.Actors, "number of sprites spawned per level")
	flags.Uint64Var(&cfg.TelemetryEvery, "telemetry", cfg.TelemetryEvery, "log arena usage every n ticks with -debug, 0 disables it")
	flags.StringVar(&cfg.SpritePath, "sprite", cfg.SpritePath, "name of a .2bpp sprite file, a built-in sprite is used if empty")
	flags.IntVar(&cfg.SpriteWidth, "w", cfg.SpriteWidth, "sprite width in pixels")
	flags.IntVar(&cfg.SpriteHeight, "h", cfg.SpriteHeight, "sprite height in pixels")
	flags.StringVar(&cfg.Snapshot, "o", cfg.Snapshot, "name of a .png file to write the last frame to")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debugging options for extended logging")
	flags.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "perform operations quietly")
}

// Validate checks value ranges that the flag and env parsers cannot express.
func (c Config) Validate() error {
	if c.Actors < 0 {
		return errors.Errorf("invalid actor count %d", c.Actors)
	}
	if c.SpritePath != "" && (c.SpriteWidth <= 0 || c.SpriteHeight <= 0) {
		return errors.Errorf("invalid sprite size %dx%d", c.SpriteWidth, c.SpriteHeight)
	}
	return nil
}

// CreateLogger returns the harness logger. Debug enables the periodic arena
// usage lines written by the tick loop; quiet drops everything below error
// level, so only allocation failures and other fatal conditions are shown.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
