package engine

import "time"

// FrameTimer measures the wall time between consecutive frames.
type FrameTimer struct {
	now           func() time.Time
	lastFrameTime time.Time
}

// NewFrameTimer starts a timer. A nil clock uses time.Now.
func NewFrameTimer(now func() time.Time) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	return &FrameTimer{
		now:           now,
		lastFrameTime: now(),
	}
}

// DeltaTime returns the seconds elapsed since the previous call (or since the timer
// was created) and restarts the measurement.
func (ft *FrameTimer) DeltaTime() float64 {
	now := ft.now()
	delta := now.Sub(ft.lastFrameTime).Seconds()
	ft.lastFrameTime = now
	return delta
}
