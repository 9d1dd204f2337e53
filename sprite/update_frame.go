package sprite

// UpdateFrame is handed to every System once per frame, after the animate
// pass and before the queued commands are flushed.
type UpdateFrame struct {
	DeltaTime float64
	Index     int64
	Commands  *Commands
	Frame     *Frame
}

// System is per-frame game logic that runs between the animate and draw passes.
type System interface {
	Execute(frame *UpdateFrame)
}
