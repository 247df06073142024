package engine

// State is the frame state machine position.
type State int

const (
	StateIdle State = iota
	StateFrameRequested
	StateUpdating
	StateRendering
	StatePresented
	// StateExiting is terminal.
	StateExiting
)

var stateNames = [...]string{"idle", "frame_requested", "updating", "rendering", "presented", "exiting"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
