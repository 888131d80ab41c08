// Package pong holds the game itself: two paddles, one ball, and the systems that
// advance them each frame. It has no dependency on a windowing library; input comes
// through Keyboard and output goes to a Canvas.
package pong

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

// World owns every entity of a match.
type World struct {
	ID     uuid.UUID
	Screen Screen
	Left   Paddle
	Right  Paddle
	Ball   Ball
	Keys   Keyboard
	Rand   *rand.Rand
	Stats  MatchStats
	Logger *slog.Logger
}

// NewWorld sets up a match. keys is read by the paddles every frame; a nil logger
// discards all output.
func NewWorld(cfg Config, keys Keyboard, logger *slog.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	id := uuid.New()
	w := &World{
		ID:     id,
		Screen: cfg.Screen,
		Left:   NewPaddle(Left, cfg.Screen),
		Right:  NewPaddle(Right, cfg.Screen),
		Ball:   NewBall(cfg.BallRadius, cfg.BallVelocity, cfg.Screen),
		Keys:   keys,
		Rand:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		Logger: logger.With("match", id.String()),
	}

	w.Logger.Info("match started",
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"seed", cfg.Seed,
	)
	return w, nil
}

// Paddle returns the paddle guarding the given side.
func (w *World) Paddle(side Side) *Paddle {
	if side == Right {
		return &w.Right
	}
	return &w.Left
}

// Draw clears the canvas and draws both paddles and the ball.
func (w *World) Draw(c Canvas) {
	c.Clear(backgroundColor)
	w.Left.Draw(c)
	w.Right.Draw(c)
	w.Ball.Draw(c)
}
