package game

import (
	"errors"
	"testing"

	"github.com/samdwyer/mansion/internal/mansion"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateAtRoom, "at_room"},
		{StateExiting, "exiting"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestEndReasonString(t *testing.T) {
	tests := []struct {
		reason   EndReason
		expected string
	}{
		{EndNone, "none"},
		{EndLeaf, "leaf"},
		{EndExit, "exit"},
		{EndInputClosed, "input_closed"},
		{EndReason(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.expected {
			t.Errorf("EndReason(%d).String() = %q, want %q", tt.reason, got, tt.expected)
		}
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		line     string
		expected Choice
	}{
		{"e\n", ChoiceLeft},
		{"E\n", ChoiceLeft},
		{"   esquerda\n", ChoiceLeft},
		{"d", ChoiceRight},
		{"\tD\n", ChoiceRight},
		{"s\n", ChoiceExit},
		{"  Sair", ChoiceExit},
		{"x\n", ChoiceInvalid},
		{"\n", ChoiceInvalid},
		{"   \t \n", ChoiceInvalid},
		{"", ChoiceInvalid},
		{"é\n", ChoiceInvalid},
		{"1e\n", ChoiceInvalid},
		{"ſ\n", ChoiceInvalid}, // long s folds to "s" under full case folding
		{"\xff", ChoiceInvalid},
	}

	for _, tt := range tests {
		if got := ParseChoice(tt.line); got != tt.expected {
			t.Errorf("ParseChoice(%q) = %v, want %v", tt.line, got, tt.expected)
		}
	}
}

func TestNewExplorerNilRoot(t *testing.T) {
	if _, err := NewExplorer(nil); !errors.Is(err, ErrNilRoot) {
		t.Errorf("NewExplorer(nil) error = %v, want ErrNilRoot", err)
	}
}

func TestNewExplorerStartsAtRoot(t *testing.T) {
	hall := mansion.NewDefault()
	ex, err := NewExplorer(hall)
	if err != nil {
		t.Fatalf("NewExplorer() error: %v", err)
	}

	if ex.Current() != hall {
		t.Errorf("Current() = %q, want %q", ex.Current().Name, hall.Name)
	}
	if ex.State() != StateAtRoom {
		t.Errorf("State() = %v, want StateAtRoom", ex.State())
	}
	if ex.Reason() != EndNone {
		t.Errorf("Reason() = %v, want EndNone", ex.Reason())
	}
	assertNames(t, ex.Log().Names(), mansion.HallName)
}

func TestExplorerOptions(t *testing.T) {
	hall := mansion.NewDefault()
	ex, _ := NewExplorer(hall)

	opts := ex.Options()
	if len(opts) != 3 {
		t.Fatalf("Options() at hall = %d entries, want 3", len(opts))
	}
	if opts[0].Choice != ChoiceLeft || opts[0].Room != hall.Left {
		t.Errorf("Options()[0] = %+v, want left to %s", opts[0], hall.Left.Name)
	}
	if opts[1].Choice != ChoiceRight || opts[1].Room != hall.Right {
		t.Errorf("Options()[1] = %+v, want right to %s", opts[1], hall.Right.Name)
	}
	if opts[2].Choice != ChoiceExit {
		t.Errorf("Options()[2] = %+v, want exit", opts[2])
	}

	// Biblioteca has only a left exit.
	ex.Apply(ChoiceLeft)
	ex.Apply(ChoiceLeft)
	opts = ex.Options()
	if len(opts) != 2 || opts[0].Choice != ChoiceLeft || opts[1].Choice != ChoiceExit {
		t.Errorf("Options() at %s = %+v, want [left exit]", ex.Current().Name, opts)
	}
}

func TestExplorerApply(t *testing.T) {
	tests := []struct {
		name     string
		choices  []Choice
		outcomes []Outcome
		visited  []string
		state    State
		reason   EndReason
	}{
		{
			name:     "walk to garden leaf",
			choices:  []Choice{ChoiceLeft, ChoiceLeft, ChoiceLeft},
			outcomes: []Outcome{OutcomeMoved, OutcomeMoved, OutcomeMoved},
			visited:  []string{mansion.HallName, mansion.LivingRoomName, mansion.LibraryName, mansion.GardenName},
			state:    StateExiting,
			reason:   EndLeaf,
		},
		{
			name:     "left then right reaches dining room",
			choices:  []Choice{ChoiceLeft, ChoiceRight, ChoiceExit},
			outcomes: []Outcome{OutcomeMoved, OutcomeMoved, OutcomeIgnored},
			visited:  []string{mansion.HallName, mansion.LivingRoomName, mansion.DiningRoomName},
			state:    StateExiting,
			reason:   EndLeaf,
		},
		{
			name:     "invalid does not move",
			choices:  []Choice{ChoiceInvalid, ChoiceExit},
			outcomes: []Outcome{OutcomeInvalid, OutcomeExited},
			visited:  []string{mansion.HallName},
			state:    StateExiting,
			reason:   EndExit,
		},
		{
			name:     "missing right exit at library",
			choices:  []Choice{ChoiceLeft, ChoiceLeft, ChoiceRight},
			outcomes: []Outcome{OutcomeMoved, OutcomeMoved, OutcomeUnavailable},
			visited:  []string{mansion.HallName, mansion.LivingRoomName, mansion.LibraryName},
			state:    StateAtRoom,
			reason:   EndNone,
		},
		{
			name:     "missing left exit at hallway",
			choices:  []Choice{ChoiceRight, ChoiceRight, ChoiceLeft, ChoiceRight},
			outcomes: []Outcome{OutcomeMoved, OutcomeMoved, OutcomeUnavailable, OutcomeMoved},
			visited:  []string{mansion.HallName, mansion.KitchenName, mansion.HallwayName, mansion.BedroomName},
			state:    StateExiting,
			reason:   EndLeaf,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, _ := NewExplorer(mansion.NewDefault())
			for i, c := range tt.choices {
				if got := ex.Apply(c); got != tt.outcomes[i] {
					t.Errorf("Apply(%v) #%d = %v, want %v", c, i, got, tt.outcomes[i])
				}
			}
			assertNames(t, ex.Log().Names(), tt.visited...)
			if ex.State() != tt.state {
				t.Errorf("State() = %v, want %v", ex.State(), tt.state)
			}
			if ex.Reason() != tt.reason {
				t.Errorf("Reason() = %v, want %v", ex.Reason(), tt.reason)
			}
		})
	}
}

func TestExplorerLeafRoot(t *testing.T) {
	ex, err := NewExplorer(mansion.NewRoom("Cela"))
	if err != nil {
		t.Fatalf("NewExplorer() error: %v", err)
	}
	if ex.State() != StateExiting || ex.Reason() != EndLeaf {
		t.Errorf("leaf root: state=%v reason=%v, want exiting/leaf", ex.State(), ex.Reason())
	}
	if got := ex.Apply(ChoiceExit); got != OutcomeIgnored {
		t.Errorf("Apply(exit) on finished session = %v, want OutcomeIgnored", got)
	}
}

func TestExplorerCloseInput(t *testing.T) {
	ex, _ := NewExplorer(mansion.NewDefault())
	ex.CloseInput()

	if ex.State() != StateExiting || ex.Reason() != EndInputClosed {
		t.Errorf("after CloseInput: state=%v reason=%v, want exiting/input_closed", ex.State(), ex.Reason())
	}

	// A finished session keeps its original reason.
	ex2, _ := NewExplorer(mansion.NewDefault())
	ex2.Apply(ChoiceExit)
	ex2.CloseInput()
	if ex2.Reason() != EndExit {
		t.Errorf("CloseInput after exit: reason=%v, want EndExit", ex2.Reason())
	}
}

func assertNames(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("visited = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited = %v, want %v", got, want)
		}
	}
}
