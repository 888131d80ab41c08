package pong

//go:generate go tool stringer -type=Side

// Side selects which edge of the playfield a paddle guards.
type Side int

const (
	Left Side = iota
	Right
)

// Bindings returns the keys that move a paddle on this side up and down.
func (s Side) Bindings() (up, down Key) {
	if s == Right {
		return KeyArrowUp, KeyArrowDown
	}
	return KeyW, KeyS
}

// anchor is the horizontal position of the paddle as a fraction of screen width.
func (s Side) anchor() float32 {
	if s == Right {
		return 0.95
	}
	return 0.05
}
