package pong

import "github.com/plus3/pong/engine"

// ClockSystem counts frames and accumulates elapsed time.
type ClockSystem struct{}

func (s *ClockSystem) Execute(frame *engine.UpdateFrame[*World]) {
	frame.State.Stats.Frames++
	frame.State.Stats.Elapsed += frame.DeltaTime
}

// PaddleSystem moves the paddle on one side from the world's keyboard.
type PaddleSystem struct {
	Side Side
}

func (s *PaddleSystem) Name() string {
	return s.Side.String() + "PaddleSystem"
}

func (s *PaddleSystem) Execute(frame *engine.UpdateFrame[*World]) {
	w := frame.State
	w.Paddle(s.Side).Update(float32(frame.DeltaTime), w.Keys, w.Screen)
}

// BallSystem advances the ball against this frame's paddle positions.
type BallSystem struct{}

func (s *BallSystem) Execute(frame *engine.UpdateFrame[*World]) {
	w := frame.State
	ev := w.Ball.Update(w.Left, w.Right, float32(frame.DeltaTime), w.Screen, w.Rand)
	w.Stats.Record(ev, w.Ball)

	if ev.PaddleHits > 0 {
		w.Logger.Debug("paddle hit", "hits", ev.PaddleHits, "vx", w.Ball.Vel.X)
	}
	if ev.Reset {
		w.Logger.Debug("ball served", "vx", w.Ball.Vel.X, "vy", w.Ball.Vel.Y, "resets", w.Stats.Resets)
	}
}

// NewScheduler builds the frame pipeline for a world. Callers may register more
// systems after the game systems.
func NewScheduler(w *World) *engine.Scheduler[*World] {
	scheduler := engine.NewScheduler(w)
	RegisterSystems(scheduler)
	return scheduler
}

// RegisterSystems appends the game systems in frame order: clock, left paddle, right
// paddle, ball.
func RegisterSystems(scheduler *engine.Scheduler[*World]) {
	scheduler.Register(&ClockSystem{})
	scheduler.Register(&PaddleSystem{Side: Left})
	scheduler.Register(&PaddleSystem{Side: Right})
	scheduler.Register(&BallSystem{})
}
