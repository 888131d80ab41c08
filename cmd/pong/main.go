package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/plus3/pong/debugui"
	"github.com/plus3/pong/pong"
	"github.com/plus3/pong/render"
)

const title = "Pong"

func main() {
	width := flag.Int("width", 800, "Logical screen width.")
	height := flag.Int("height", 600, "Logical screen height.")
	seed := flag.Uint64("seed", 0, "Seed for serve randomness. 0 picks one from the clock.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay (toggle with F1).")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := pong.DefaultConfig()
	cfg.Screen = pong.Screen{Width: float32(*width), Height: float32(*height)}
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	keys := pong.NewKeySet()
	world, err := pong.NewWorld(cfg, keys, logger)
	if err != nil {
		log.Fatalf("Failed to set up match: %v", err)
	}

	var backend *debugui.Backend
	if *debug {
		backend = debugui.NewBackend(title, *width, *height)
	}

	game := render.NewGame(world, keys, backend)
	if err := game.Run(title); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	world.Logger.Info("match finished",
		"frames", world.Stats.Frames,
		"paddle_hits", world.Stats.PaddleHits,
		"serves", world.Stats.Resets,
	)
}
