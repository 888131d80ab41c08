// Package engine runs a fixed, ordered list of systems once per frame against a
// shared state value and keeps per-system timing statistics.
package engine

// System is one step of the frame pipeline. Systems run in registration order and
// may keep their own state between frames.
type System[S any] interface {
	Execute(frame *UpdateFrame[S])
}
