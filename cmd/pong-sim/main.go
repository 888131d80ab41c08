package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

// Options configures a headless run.
type Options struct {
	Frames    int
	DeltaTime float64
	Seed      uint64
	Hold      int
	// Realtime, when positive, runs the scheduler on a wall-clock ticker for this long
	// instead of stepping Frames times.
	Realtime time.Duration
}

var errInvalidOptions = errors.New("invalid options")

func (o Options) validate() error {
	if o.DeltaTime <= 0 {
		return fmt.Errorf("%w: dt must be positive", errInvalidOptions)
	}
	if o.Realtime <= 0 && o.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive", errInvalidOptions)
	}
	if o.Realtime > 0 && o.interval() <= 0 {
		return fmt.Errorf("%w: dt is shorter than the ticker resolution", errInvalidOptions)
	}
	return nil
}

// interval is DeltaTime as a tick interval, truncated to whole nanoseconds.
func (o Options) interval() time.Duration {
	return time.Duration(o.DeltaTime * float64(time.Second))
}

func main() {
	frames := flag.Int("frames", 3600, "Number of fixed-step frames to simulate.")
	dt := flag.Float64("dt", 1.0/60.0, "Frame delta time in seconds (tick interval in realtime mode).")
	seed := flag.Uint64("seed", 1, "Seed for serves and scripted input.")
	hold := flag.Int("hold", 30, "Frames each scripted key combination is held for.")
	realtime := flag.Duration("realtime", 0, "Run on a wall-clock ticker for this long instead of fixed steps.")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn or error.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := Options{
		Frames:    *frames,
		DeltaTime: *dt,
		Seed:      *seed,
		Hold:      *hold,
		Realtime:  *realtime,
	}

	log.Println("Starting pong simulation...")
	report, err := simulate(context.Background(), opts, logger)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	log.Println("Simulation finished.")

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
}

// simulate plays one match with scripted input and reports on it.
func simulate(ctx context.Context, opts Options, logger *slog.Logger) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	script := NewScript(opts.Seed, opts.Hold)

	cfg := pong.DefaultConfig()
	cfg.Seed = opts.Seed
	world, err := pong.NewWorld(cfg, script, logger)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	scheduler := engine.NewScheduler(world)
	scheduler.Register(&ScriptSystem{Script: script})
	pong.RegisterSystems(scheduler)

	report := &Report{
		Options: opts,
		MatchID: world.ID.String(),
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, max(opts.Frames, 0)),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	if opts.Realtime > 0 {
		runCtx, cancel := context.WithTimeout(ctx, opts.Realtime)
		defer cancel()
		scheduler.Run(runCtx, opts.interval())
	} else {
		for range opts.Frames {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			updateStart := time.Now()
			scheduler.Once(opts.DeltaTime)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Stats = world.Stats
	report.Ball = world.Ball
	report.LeftY = world.Left.Rect.Y
	report.RightY = world.Right.Rect.Y
	report.Systems = scheduler.GetStats().Systems

	world.Logger.Info("simulation complete",
		"frames", world.Stats.Frames,
		"paddle_hits", world.Stats.PaddleHits,
		"serves", world.Stats.Resets,
	)
	return report, nil
}
