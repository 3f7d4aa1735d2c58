package machine

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// DefaultTickDuration is the fixed simulation step, roughly 60 ticks per second.
const DefaultTickDuration = 16 * time.Millisecond

// StepFunc runs the per-tick work. The Frame arena has already been reset
// when it is called.
type StepFunc func(*Context) error

// LoopConfig controls Run.
type LoopConfig struct {
	TickDuration   time.Duration // fixed step, DefaultTickDuration if zero
	MaxTicks       uint64        // stop after this many ticks, 0 runs until cancelled
	TelemetryEvery uint64        // log arena usage every n ticks, 0 disables it
}

// Run drives c at a fixed timestep until ctx is cancelled, MaxTicks ticks
// have run, or step returns an error. An error from step is returned wrapped
// with the tick number; allocation failures keep their *arena.AllocError in
// the chain. Cancellation returns ctx.Err().
func Run(ctx context.Context, c *Context, cfg LoopConfig, logger *log.Logger, step StepFunc) error {
	tickDuration := cfg.TickDuration
	if tickDuration <= 0 {
		tickDuration = DefaultTickDuration
	}

	ticker := time.NewTicker(tickDuration)
	defer ticker.Stop()

	var ran uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := c.Step(step); err != nil {
			return errors.Wrapf(err, "tick %d", c.Tick())
		}
		ran++

		if cfg.TelemetryEvery > 0 && ran%cfg.TelemetryEvery == 0 {
			LogTelemetry(logger, c)
		}

		if cfg.MaxTicks > 0 && ran >= cfg.MaxTicks {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// LogTelemetry writes the usage of every arena at debug level.
func LogTelemetry(logger *log.Logger, c *Context) {
	tel := c.Memory.Telemetry()
	for _, m := range tel.Arenas() {
		logger.Debug("Arena usage",
			log.Int("tick", int(c.Tick())),
			log.String("arena", m.Name),
			log.Int("used", m.Used),
			log.Int("peak", m.Peak),
			log.Int("capacity", m.Capacity),
		)
	}
}
