package pong

// MatchStats counts what happened during a match. It is not a score.
type MatchStats struct {
	Frames      int64
	Elapsed     float64
	PaddleHits  int64
	WallBounces int64
	Resets      int64
	PeakSpeedX  float32
}

// Record folds the result of one ball update into the counters.
func (s *MatchStats) Record(ev BallEvents, ball Ball) {
	s.PaddleHits += int64(ev.PaddleHits)
	if ev.WallBounce {
		s.WallBounces++
	}
	if ev.Reset {
		s.Resets++
	}
	speed := ball.Vel.X
	if speed < 0 {
		speed = -speed
	}
	if speed > s.PeakSpeedX {
		s.PeakSpeedX = speed
	}
}
