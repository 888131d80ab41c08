package pong

const (
	// PaddleWidth and PaddleHeight are the fixed paddle size.
	PaddleWidth  float32 = 20
	PaddleHeight float32 = 300

	// PaddleSpeed is the vertical paddle speed in units per second.
	PaddleSpeed float32 = 600
)

// Paddle is a player-controlled rectangle that only moves vertically.
type Paddle struct {
	Rect Rect
	Side Side
}

// NewPaddle places a paddle at its side's horizontal anchor, vertically centred.
func NewPaddle(side Side, screen Screen) Paddle {
	return Paddle{
		Rect: Rect{
			X: screen.Width * side.anchor(),
			Y: screen.Height/2 - PaddleHeight/2,
			W: PaddleWidth,
			H: PaddleHeight,
		},
		Side: side,
	}
}

// Update moves the paddle by the direction its keys request. A paddle leaving the
// top edge reappears at the bottom and vice versa.
func (p *Paddle) Update(dt float32, keys Keyboard, screen Screen) {
	p.Rect.Y += Direction(keys, p.Side) * dt * PaddleSpeed

	if p.Rect.Y < 0 {
		p.Rect.Y = screen.Height
	}
	if p.Rect.Y > screen.Height {
		p.Rect.Y = 0
	}
}

// Draw fills the paddle's rectangle. It does not change the paddle.
func (p Paddle) Draw(c Canvas) {
	c.FillRect(p.Rect, paddleColor)
}
