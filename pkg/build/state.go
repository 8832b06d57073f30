package build

// State is the coarse outcome communicated to the chat room.
type State string

const (
	StateSuccess State = "success"
	StateWarning State = "warning"
	StateFailure State = "failure"
	StatePending State = "pending"
	StateError   State = "error"
	StateUnknown State = "unknown"
)

var completedStates = map[Result]State{
	Success:   StateSuccess,
	Warnings:  StateWarning,
	Failure:   StateFailure,
	Skipped:   StateSuccess,
	Exception: StateError,
	Retry:     StatePending,
	Cancelled: StateError,
}

// MapState converts the build result into a notification state. Unfinished builds
// are always pending and unknown result codes of finished builds are failures.
func MapState(complete bool, result Result, warningAsSuccess bool) State {
	if !complete {
		return StatePending
	}
	state, ok := completedStates[result]
	if !ok {
		return StateFailure
	}
	if state == StateWarning && warningAsSuccess {
		return StateSuccess
	}
	return state
}
