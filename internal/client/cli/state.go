package cli

import "fmt"

// State identifies a screen of the transcription wizard.
type State int

const (
	StateLoggedOut State = iota
	StateUpload
	StateConfiguring
	StateProcessing
	StateResult
	StateLibrary
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged-out"
	case StateUpload:
		return "upload"
	case StateConfiguring:
		return "configuring"
	case StateProcessing:
		return "processing"
	case StateResult:
		return "result"
	case StateLibrary:
		return "library"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// transitions is the exhaustive table of allowed state changes. A change that
// is not listed here is a programming error and is rejected at dispatch.
var transitions = map[State][]State{
	StateLoggedOut:   {StateUpload},
	StateUpload:      {StateConfiguring, StateLibrary, StateLoggedOut},
	StateConfiguring: {StateProcessing, StateUpload, StateLoggedOut},
	StateProcessing:  {StateResult, StateUpload},
	StateResult:      {StateUpload, StateLibrary, StateLoggedOut},
	StateLibrary:     {StateUpload, StateResult, StateLoggedOut},
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// transition moves the app to a new state, or fails without changing state
// when the move is not in the transition table.
func (a *App) transition(to State) error {
	if !canTransition(a.state, to) {
		return fmt.Errorf("invalid transition from %s to %s", a.state, to)
	}
	a.state = to
	return nil
}
