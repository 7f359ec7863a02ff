package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mansion/internal/i18n"
	"github.com/samdwyer/mansion/internal/mansion"
	"github.com/samdwyer/mansion/internal/telemetry"
)

// Session runs one line-oriented exploration over a reader and writer.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	printer *i18n.Printer
}

// NewSession creates a session reading one command per line from in.
func NewSession(in io.Reader, out io.Writer, printer *i18n.Printer) *Session {
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		printer: printer,
	}
}

// Run explores from root until a leaf, an exit request or end of input, then
// writes the visit report. The returned log is the session's visit log.
func (s *Session) Run(ctx context.Context, root *mansion.Room) (*VisitLog, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "explore.session")
	defer span.End()

	ex, err := NewExplorer(root)
	if err != nil {
		return nil, err
	}

	readErr := s.loop(ex, span)

	span.SetAttributes(
		attribute.Int("explore.rooms_visited", ex.Log().Len()),
		attribute.String("explore.end_reason", ex.Reason().String()),
		attribute.String("explore.last_room", ex.Current().Name),
	)

	if err := ex.Log().Report(s.out, s.printer); err != nil {
		return ex.Log(), fmt.Errorf("write report: %w", err)
	}
	if readErr != nil {
		span.RecordError(readErr)
		return ex.Log(), fmt.Errorf("read input: %w", readErr)
	}
	return ex.Log(), nil
}

// loop drives the explorer until it stops. It returns a read error other than EOF.
func (s *Session) loop(ex *Explorer, span trace.Span) error {
	entered := true
	for {
		if entered {
			s.announce(ex.Current(), span)
			entered = false
		}

		if ex.State() == StateExiting {
			if ex.Reason() == EndLeaf {
				s.println(i18n.LeafReached)
			}
			return nil
		}

		s.showOptions(ex)

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			ex.CloseInput()
			return err
		}
		if err != nil && line == "" {
			fmt.Fprintf(s.out, "\n%s\n", s.printer.Sprintf(i18n.InputClosed))
			ex.CloseInput()
			return nil
		}

		choice := ParseChoice(line)
		switch ex.Apply(choice) {
		case OutcomeMoved:
			entered = true
		case OutcomeExited:
			s.println(i18n.PlayerExited)
		case OutcomeUnavailable:
			if choice == ChoiceLeft {
				s.println(i18n.LeftUnavailable)
			} else {
				s.println(i18n.RightUnavailable)
			}
		case OutcomeInvalid:
			s.println(i18n.InvalidOption)
		}
	}
}

func (s *Session) announce(r *mansion.Room, span trace.Span) {
	span.AddEvent("room.enter", trace.WithAttributes(
		attribute.String("room.name", r.Name),
		attribute.Bool("room.leaf", r.IsLeaf()),
	))
	fmt.Fprintf(s.out, "\n%s\n", s.printer.Sprintf(i18n.YouAreIn, r.Name))
}

func (s *Session) showOptions(ex *Explorer) {
	s.println(i18n.ChooseOption)
	for _, opt := range ex.Options() {
		switch opt.Choice {
		case ChoiceLeft:
			s.println(i18n.OptionLeft, opt.Room.Name)
		case ChoiceRight:
			s.println(i18n.OptionRight, opt.Room.Name)
		case ChoiceExit:
			s.println(i18n.OptionExit)
		}
	}
	fmt.Fprint(s.out, s.printer.Sprintf(i18n.Prompt))
}

func (s *Session) println(key string, args ...any) {
	fmt.Fprintln(s.out, s.printer.Sprintf(key, args...))
}
