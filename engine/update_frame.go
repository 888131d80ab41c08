package engine

// UpdateFrame is handed to every system during a single Scheduler.Once call.
// DeltaTime is sampled once per frame and is the same for all systems.
type UpdateFrame[S any] struct {
	DeltaTime float64
	Commands  *Commands
	State     S
}

func newUpdateFrame[S any](dt float64, state S, commands *Commands) *UpdateFrame[S] {
	return &UpdateFrame[S]{
		DeltaTime: dt,
		Commands:  commands,
		State:     state,
	}
}
