package pong

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScreen = errors.New("screen dimensions must be positive")
	ErrInvalidRadius = errors.New("ball radius must be positive")
)

// Config describes how a match is set up.
type Config struct {
	Screen       Screen
	BallRadius   float32
	BallVelocity Vec2
	// Seed feeds the serve randomness. Matches with the same seed and input replay
	// identically.
	Seed uint64
}

// DefaultConfig returns the standard 800x600 setup.
func DefaultConfig() Config {
	return Config{
		Screen:       Screen{Width: 800, Height: 600},
		BallRadius:   20,
		BallVelocity: Vec2{X: 500, Y: 150},
	}
}

// Validate reports whether the config describes a playable match. The returned error
// wraps ErrInvalidScreen or ErrInvalidRadius.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: got %gx%g", ErrInvalidScreen, c.Screen.Width, c.Screen.Height)
	}
	if c.BallRadius <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, c.BallRadius)
	}
	return nil
}
