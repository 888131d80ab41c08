package pong

import "math/rand/v2"

const (
	// BounceFactor multiplies the horizontal velocity on every paddle hit.
	BounceFactor float32 = -1.01

	// ServeSpeed is the horizontal speed of a freshly served ball.
	ServeSpeed float32 = 400
	// ServeMinDrift and ServeMaxDrift bound the downward speed of a served ball.
	ServeMinDrift float32 = 50
	ServeMaxDrift float32 = 150
)

// Ball is the moving circle. Its position is the centre of the circle.
type Ball struct {
	Pos    Vec2
	Vel    Vec2
	Radius float32
}

// BallEvents describes what happened to the ball during one update.
type BallEvents struct {
	PaddleHits int
	WallBounce bool
	Reset      bool
}

// NewBall creates a ball at the centre of the screen.
func NewBall(radius float32, vel Vec2, screen Screen) Ball {
	return Ball{
		Pos:    screen.Center(),
		Vel:    vel,
		Radius: radius,
	}
}

// Bounds returns the square enclosing the ball.
func (b Ball) Bounds() Rect {
	return Rect{
		X: b.Pos.X - b.Radius,
		Y: b.Pos.Y - b.Radius,
		W: b.Radius * 2,
		H: b.Radius * 2,
	}
}

// CheckIntersect reports whether the ball's bounding square overlaps the paddle.
func (b Ball) CheckIntersect(p Paddle) bool {
	return p.Rect.Overlaps(b.Bounds())
}

// Update runs the collision, bounce and exit checks against the current position and
// then integrates the position. Each overlapping paddle reverses and speeds up the
// horizontal velocity on its own.
//
// The vertical bounce only flips the sign of the velocity; the ball is not moved back
// inside the screen, so a ball that stays beyond an edge flips again every frame.
func (b *Ball) Update(left, right Paddle, dt float32, screen Screen, rng *rand.Rand) BallEvents {
	var ev BallEvents

	for _, p := range [...]Paddle{left, right} {
		if b.CheckIntersect(p) {
			b.Vel.X *= BounceFactor
			ev.PaddleHits++
		}
	}

	if b.Pos.Y+b.Radius > screen.Height || b.Pos.Y < b.Radius {
		b.Vel.Y = -b.Vel.Y
		ev.WallBounce = true
	}

	if b.Pos.X < 0 || b.Pos.X > screen.Width {
		b.Serve(screen, rng)
		ev.Reset = true
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	return ev
}

// Serve puts the ball back in the centre with a random horizontal direction and a
// random downward drift.
func (b *Ball) Serve(screen Screen, rng *rand.Rand) {
	b.Pos = screen.Center()
	b.Vel = Vec2{
		X: signum(uniform(rng, -1, 1)) * ServeSpeed,
		Y: uniform(rng, ServeMinDrift, ServeMaxDrift),
	}
}

// Draw renders the ball as a blue and a red circle nudged either side of the centre,
// covered by a white circle on the centre.
func (b Ball) Draw(c Canvas) {
	c.FillCircle(Vec2{X: b.Pos.X + FringeOffset, Y: b.Pos.Y}, b.Radius, fringeRightColor)
	c.FillCircle(Vec2{X: b.Pos.X - FringeOffset, Y: b.Pos.Y}, b.Radius, fringeLeftColor)
	c.FillCircle(b.Pos, b.Radius, ballColor)
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// signum maps zero to +1.
func signum(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
