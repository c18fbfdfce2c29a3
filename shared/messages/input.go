package messages

// InputEvent is sent by a client whenever a control is pressed or released.
// Type is "start" or "stop"; Action is "left", "right" or "jump".
type InputEvent struct {
	Type   string
	Action string
}

// Session commands carried by SessionControl.
const (
	CommandPause   = "pause"
	CommandResume  = "resume"
	CommandRestart = "restart"
)

// SessionControl pauses, resumes or restarts the client's session.
type SessionControl struct {
	Command string
}
