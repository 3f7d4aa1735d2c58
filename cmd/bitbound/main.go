// Package main implements a headless harness that runs the runtime core for
// a number of ticks and optionally saves the last frame as an image.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/pavanmanishd/bitbound/arena"
	"github.com/pavanmanishd/bitbound/framebuffer"
	"github.com/pavanmanishd/bitbound/internal/config"
	"github.com/pavanmanishd/bitbound/internal/demo"
	"github.com/pavanmanishd/bitbound/machine"
	"github.com/pavanmanishd/bitbound/sprite"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	cfg, err := readArguments()
	if err != nil {
		logger := config.CreateLogger(cfg.Debug, cfg.Quiet)
		logger.Fatal(err.Error())
	}

	logger := config.CreateLogger(cfg.Debug, cfg.Quiet)
	printBanner(logger, cfg)

	if err := run(ctx, logger, cfg); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}

		var allocErr *arena.AllocError
		if errors.As(err, &allocErr) {
			logger.Error("Memory exhausted",
				log.String("arena", allocErr.Arena),
				log.Int("requested", int(allocErr.Size)),
				log.Int("used", allocErr.Used),
				log.Int("capacity", allocErr.Capacity),
			)
		}
		logger.Error("Running failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() (config.Config, error) {
	cfg, err := config.ParseEnv()
	if err != nil {
		return cfg, err
	}

	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	config.RegisterFlags(flags, &cfg)
	flags.Usage = func() {
		fmt.Printf("usage: bitbound [options]\n\n")
		flags.PrintDefaults()
		fmt.Println()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		return cfg, err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return cfg, errors.Errorf("unexpected argument %q", flags.Arg(0))
	}

	return cfg, cfg.Validate()
}

func printBanner(logger *log.Logger, cfg config.Config) {
	if cfg.Quiet {
		return
	}
	logger.Info("bitbound", log.String("version", buildinfo.Version(version, commit, date)))
}

func run(ctx context.Context, logger *log.Logger, cfg config.Config) error {
	s, err := loadSprite(cfg)
	if err != nil {
		return err
	}

	owner := machine.NewOwner(machine.NewContext())
	return owner.With(func(c *machine.Context) error {
		scene, err := demo.New(c, s, demo.Options{
			Actors:     cfg.Actors,
			LevelTicks: cfg.LevelTicks,
		})
		if err != nil {
			return err
		}

		loopCfg := machine.LoopConfig{
			TickDuration:   cfg.TickDuration,
			MaxTicks:       cfg.Ticks,
			TelemetryEvery: cfg.TelemetryEvery,
		}
		err = machine.Run(ctx, c, loopCfg, logger, scene.Step)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		logger.Info("Simulation finished",
			log.Int("ticks", int(c.Tick())),
			log.Int("level", c.Level()),
			log.Int("actors", scene.Live()),
		)
		machine.LogTelemetry(logger, c)

		if cfg.Snapshot != "" {
			if err := writeSnapshot(cfg.Snapshot, c.Screen); err != nil {
				return err
			}
			logger.Info("Snapshot written", log.String("file", cfg.Snapshot))
		}
		return err
	})
}

func loadSprite(cfg config.Config) (*sprite.Sprite, error) {
	if cfg.SpritePath == "" {
		return demo.DefaultSprite()
	}

	f, err := os.Open(cfg.SpritePath)
	if err != nil {
		return nil, errors.Wrap(err, "opening sprite file")
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := sprite.Load(f, cfg.SpriteWidth, cfg.SpriteHeight)
	if err != nil {
		return nil, errors.Wrapf(err, "loading sprite '%s'", cfg.SpritePath)
	}
	return s, nil
}

func writeSnapshot(path string, fb *framebuffer.FrameBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating snapshot file")
	}

	if err := png.Encode(f, fb.Image(framebuffer.DMGPalette)); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "encoding snapshot")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing snapshot file")
	}
	return nil
}
