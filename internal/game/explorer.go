package game

import (
	"errors"

	"github.com/samdwyer/mansion/internal/mansion"
)

// ErrNilRoot is returned when exploration starts without a map.
var ErrNilRoot = errors.New("mansion has no root room")

// Option is one entry of the menu offered at a room.
type Option struct {
	Choice Choice
	Room   *mansion.Room // Destination; nil for ChoiceExit
}

// Explorer is the room-walking state machine. It owns the cursor and the
// visit log; the tree itself is only read.
type Explorer struct {
	current *mansion.Room
	log     *VisitLog
	state   State
	reason  EndReason
}

// NewExplorer starts an exploration at root.
func NewExplorer(root *mansion.Room) (*Explorer, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	e := &Explorer{log: NewVisitLog()}
	e.enter(root)
	return e, nil
}

// enter moves the cursor, records the visit and ends the session on a leaf.
func (e *Explorer) enter(r *mansion.Room) {
	e.current = r
	e.state = StateAtRoom
	e.log.Append(r)
	if r.IsLeaf() {
		e.finish(EndLeaf)
	}
}

func (e *Explorer) finish(reason EndReason) {
	e.state = StateExiting
	e.reason = reason
}

// Current returns the room under the cursor.
func (e *Explorer) Current() *mansion.Room {
	return e.current
}

// State returns the current state.
func (e *Explorer) State() State {
	return e.state
}

// Reason returns why the session ended, or EndNone while it is running.
func (e *Explorer) Reason() EndReason {
	return e.reason
}

// Log returns the visit log.
func (e *Explorer) Log() *VisitLog {
	return e.log
}

// Options lists the choices available at the current room: an exit for
// each existing child, followed by ChoiceExit.
func (e *Explorer) Options() []Option {
	opts := make([]Option, 0, 3)
	if e.current.Left != nil {
		opts = append(opts, Option{Choice: ChoiceLeft, Room: e.current.Left})
	}
	if e.current.Right != nil {
		opts = append(opts, Option{Choice: ChoiceRight, Room: e.current.Right})
	}
	return append(opts, Option{Choice: ChoiceExit})
}

// Apply performs a player choice.
func (e *Explorer) Apply(c Choice) Outcome {
	if e.state == StateExiting {
		return OutcomeIgnored
	}

	if c == ChoiceExit {
		e.finish(EndExit)
		return OutcomeExited
	}

	dir, ok := c.Direction()
	if !ok {
		return OutcomeInvalid
	}
	next := e.current.Child(dir)
	if next == nil {
		return OutcomeUnavailable
	}
	e.enter(next)
	return OutcomeMoved
}

// CloseInput ends the session because no more input is available.
func (e *Explorer) CloseInput() {
	if e.state == StateExiting {
		return
	}
	e.finish(EndInputClosed)
}
