package pong_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/pong/pong"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// offscreenPaddles returns paddles that cannot touch a ball inside the playfield.
func offscreenPaddles() (pong.Paddle, pong.Paddle) {
	left := pong.Paddle{Rect: pong.Rect{X: -1000, Y: -1000, W: 20, H: 300}, Side: pong.Left}
	right := pong.Paddle{Rect: pong.Rect{X: -1000, Y: -1000, W: 20, H: 300}, Side: pong.Right}
	return left, right
}

func TestNewBall(t *testing.T) {
	b := pong.NewBall(20, pong.Vec2{X: 500, Y: 150}, testScreen)
	assert.Equal(t, pong.Vec2{X: 400, Y: 300}, b.Pos)
	assert.Equal(t, pong.Vec2{X: 500, Y: 150}, b.Vel)
	assert.Equal(t, float32(20), b.Radius)
}

func TestBallCheckIntersect(t *testing.T) {
	paddle := pong.NewPaddle(pong.Left, testScreen) // x 40..60, y 150..450

	cases := []struct {
		name string
		pos  pong.Vec2
		want bool
	}{
		{"inside", pong.Vec2{X: 50, Y: 300}, true},
		{"overlapping right edge", pong.Vec2{X: 75, Y: 300}, true},
		{"touching right edge", pong.Vec2{X: 80, Y: 300}, true},
		{"just past right edge", pong.Vec2{X: 80.5, Y: 300}, false},
		{"touching left edge", pong.Vec2{X: 20, Y: 300}, true},
		{"touching top corner", pong.Vec2{X: 80, Y: 130}, true},
		{"above", pong.Vec2{X: 50, Y: 129}, false},
		{"below", pong.Vec2{X: 50, Y: 471}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := pong.Ball{Pos: tc.pos, Radius: 20}
			assert.Equal(t, tc.want, b.CheckIntersect(paddle))
		})
	}
}

func TestBallUpdate(t *testing.T) {
	t.Run("integrates velocity", func(t *testing.T) {
		left, right := offscreenPaddles()
		b := pong.NewBall(20, pong.Vec2{X: 100, Y: -50}, testScreen)

		ev := b.Update(left, right, 0.5, testScreen, newRand(1))

		assert.Equal(t, pong.BallEvents{}, ev)
		assert.InDelta(t, 450, b.Pos.X, 1e-4)
		assert.InDelta(t, 275, b.Pos.Y, 1e-4)
	})

	t.Run("paddle hit reverses and speeds up", func(t *testing.T) {
		left := pong.NewPaddle(pong.Left, testScreen)
		right := pong.NewPaddle(pong.Right, testScreen)
		b := pong.Ball{Pos: pong.Vec2{X: 70, Y: 300}, Vel: pong.Vec2{X: -500, Y: 20}, Radius: 20}

		ev := b.Update(left, right, 0, testScreen, newRand(1))

		assert.Equal(t, 1, ev.PaddleHits)
		assert.InDelta(t, 505, b.Vel.X, 1e-3)
		assert.Equal(t, float32(20), b.Vel.Y)
	})

	t.Run("every paddle hit compounds", func(t *testing.T) {
		left := pong.NewPaddle(pong.Right, testScreen)
		right := pong.NewPaddle(pong.Right, testScreen)
		b := pong.Ball{Pos: pong.Vec2{X: 760, Y: 300}, Vel: pong.Vec2{X: 500}, Radius: 20}

		ev := b.Update(left, right, 0, testScreen, newRand(1))

		assert.Equal(t, 2, ev.PaddleHits)
		assert.InDelta(t, 500*1.01*1.01, b.Vel.X, 1e-3)
	})

	t.Run("repeated hits keep growing", func(t *testing.T) {
		left := pong.NewPaddle(pong.Left, testScreen)
		right := pong.NewPaddle(pong.Right, testScreen)
		b := pong.Ball{Pos: pong.Vec2{X: 50, Y: 300}, Vel: pong.Vec2{X: 500}, Radius: 20}

		speed := b.Vel.X
		for range 5 {
			b.Update(left, right, 0, testScreen, newRand(1))
			next := b.Vel.X
			if next < 0 {
				next = -next
			}
			assert.Greater(t, next, speed)
			assert.InDelta(t, speed*1.01, next, 1e-2)
			speed = next
		}
	})

	t.Run("bounces off top", func(t *testing.T) {
		left, right := offscreenPaddles()
		b := pong.Ball{Pos: pong.Vec2{X: 400, Y: 10}, Vel: pong.Vec2{X: 0, Y: -100}, Radius: 20}

		ev := b.Update(left, right, 0.01, testScreen, newRand(1))

		assert.True(t, ev.WallBounce)
		assert.Equal(t, float32(100), b.Vel.Y)
	})

	t.Run("bounces off bottom", func(t *testing.T) {
		left, right := offscreenPaddles()
		b := pong.Ball{Pos: pong.Vec2{X: 400, Y: 590}, Vel: pong.Vec2{X: 0, Y: 100}, Radius: 20}

		ev := b.Update(left, right, 0.01, testScreen, newRand(1))

		assert.True(t, ev.WallBounce)
		assert.Equal(t, float32(-100), b.Vel.Y)
	})

	t.Run("ball beyond an edge flips every frame", func(t *testing.T) {
		// The bounce does not move the ball back on screen. A ball far enough past
		// the bottom edge keeps flipping and never escapes.
		left, right := offscreenPaddles()
		b := pong.Ball{Pos: pong.Vec2{X: 400, Y: 700}, Vel: pong.Vec2{X: 0, Y: 10}, Radius: 20}

		want := []float32{-10, 10, -10, 10}
		for _, vy := range want {
			ev := b.Update(left, right, 0.01, testScreen, newRand(1))
			assert.True(t, ev.WallBounce)
			assert.Equal(t, vy, b.Vel.Y)
		}
		assert.Greater(t, b.Pos.Y, testScreen.Height)
	})

	t.Run("exit resets to centre", func(t *testing.T) {
		for _, x := range []float32{-1, 801} {
			left, right := offscreenPaddles()
			b := pong.Ball{Pos: pong.Vec2{X: x, Y: 100}, Vel: pong.Vec2{X: 900, Y: -300}, Radius: 20}

			ev := b.Update(left, right, 0, testScreen, newRand(7))

			assert.True(t, ev.Reset)
			assert.Equal(t, testScreen.Center(), b.Pos)
			assert.Equal(t, float32(400), abs(b.Vel.X))
			assert.GreaterOrEqual(t, b.Vel.Y, float32(50))
			assert.LessOrEqual(t, b.Vel.Y, float32(150))
		}
	})

	t.Run("reset integrates from centre", func(t *testing.T) {
		left, right := offscreenPaddles()
		b := pong.Ball{Pos: pong.Vec2{X: -5, Y: 100}, Vel: pong.Vec2{X: -100}, Radius: 20}

		b.Update(left, right, 0.1, testScreen, newRand(3))

		assert.InDelta(t, 400+b.Vel.X*0.1, b.Pos.X, 1e-3)
		assert.InDelta(t, 300+b.Vel.Y*0.1, b.Pos.Y, 1e-3)
	})

	t.Run("serve is reproducible for a seed", func(t *testing.T) {
		left, right := offscreenPaddles()
		a := pong.Ball{Pos: pong.Vec2{X: -1, Y: 300}, Radius: 20}
		b := a

		a.Update(left, right, 0, testScreen, newRand(42))
		b.Update(left, right, 0, testScreen, newRand(42))

		assert.Equal(t, a, b)
	})

	t.Run("serve picks both directions", func(t *testing.T) {
		rng := newRand(11)
		seen := map[float32]int{}
		for range 200 {
			var b pong.Ball
			b.Serve(testScreen, rng)
			seen[b.Vel.X]++
			require.GreaterOrEqual(t, b.Vel.Y, float32(50))
			require.LessOrEqual(t, b.Vel.Y, float32(150))
		}
		assert.Len(t, seen, 2)
		assert.Positive(t, seen[400])
		assert.Positive(t, seen[-400])
	})

	// Ball at (795, 300) with velocity (500, 150), width 800, dt 0.01: integration lands
	// on x = 800 exactly. The exit test is strict, so 800 is still in play and the reset
	// comes two frames later, once the ball is at 805.
	t.Run("ball at 795 with vx 500 and dt 0.01 resets two frames after reaching 800", func(t *testing.T) {
		left, right := offscreenPaddles()
		b := pong.Ball{Pos: pong.Vec2{X: 795, Y: 300}, Vel: pong.Vec2{X: 500, Y: 150}, Radius: 20}

		ev := b.Update(left, right, 0.01, testScreen, newRand(1))
		require.False(t, ev.Reset)
		assert.Equal(t, float32(800), b.Pos.X)

		// x == width is not past the edge.
		ev = b.Update(left, right, 0.01, testScreen, newRand(1))
		require.False(t, ev.Reset)
		assert.InDelta(t, 805, b.Pos.X, 1e-3)

		ev = b.Update(left, right, 0, testScreen, newRand(1))
		assert.True(t, ev.Reset)
		assert.Equal(t, testScreen.Center(), b.Pos)
	})
}

func TestBallDraw(t *testing.T) {
	c := &recordingCanvas{}
	b := pong.Ball{Pos: pong.Vec2{X: 100, Y: 50}, Radius: 20}
	b.Draw(c)

	require.Len(t, c.calls, 3)
	assert.Equal(t, drawCall{Op: "circle", Center: pong.Vec2{X: 100.2, Y: 50}, Radius: 20, Color: blue}, c.calls[0])
	assert.Equal(t, drawCall{Op: "circle", Center: pong.Vec2{X: 99.8, Y: 50}, Radius: 20, Color: red}, c.calls[1])
	assert.Equal(t, drawCall{Op: "circle", Center: pong.Vec2{X: 100, Y: 50}, Radius: 20, Color: white}, c.calls[2])
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
