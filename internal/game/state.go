// Package game provides the exploration loop and session management.
package game

// State represents the explorer's current state.
type State int

const (
	// StateAtRoom means the player stands in a room and may choose an exit.
	StateAtRoom State = iota
	// StateExiting is terminal: the session is over.
	StateExiting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAtRoom:
		return "at_room"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// EndReason records why a session stopped.
type EndReason int

const (
	EndNone EndReason = iota
	EndLeaf
	EndExit
	EndInputClosed
)

// String returns a human-readable reason name.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndLeaf:
		return "leaf"
	case EndExit:
		return "exit"
	case EndInputClosed:
		return "input_closed"
	default:
		return "unknown"
	}
}

// Outcome is the result of applying a choice.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeInvalid
	OutcomeUnavailable
	OutcomeExited
	OutcomeIgnored // session already over
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeExited:
		return "exited"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}
