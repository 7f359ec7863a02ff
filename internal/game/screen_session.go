package game

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mansion/internal/i18n"
	"github.com/samdwyer/mansion/internal/mansion"
	"github.com/samdwyer/mansion/internal/telemetry"
	"github.com/samdwyer/mansion/internal/ui"
)

// runScreen explores on the full-screen front end. Keys go through the same
// parser as typed lines; Esc and Ctrl-C exit, Ctrl-D closes input. The report
// is written to the output stream after the screen is closed.
func (g *Game) runScreen(ctx context.Context, root *mansion.Room) (*VisitLog, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "explore.session")
	defer span.End()

	ex, err := NewExplorer(root)
	if err != nil {
		return nil, err
	}

	screen, err := g.newScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	renderer := ui.NewRenderer(screen)
	span.AddEvent("room.enter", trace.WithAttributes(attribute.String("room.name", root.Name)))

	status := ""
	for ex.State() == StateAtRoom {
		renderer.Render(g.roomView(ex, status))

		ev := screen.PollEvent()
		if ev == nil {
			ex.CloseInput()
			break
		}

		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			continue
		}

		choice := ChoiceInvalid
		switch key.Key() {
		case tcell.KeyCtrlD:
			ex.CloseInput()
			continue
		case tcell.KeyEscape, tcell.KeyCtrlC:
			choice = ChoiceExit
		case tcell.KeyRune:
			if key.Modifiers()&tcell.ModCtrl != 0 {
				switch key.Rune() {
				case 'd', 'D':
					ex.CloseInput()
					continue
				case 'c', 'C':
					choice = ChoiceExit
				}
				break
			}
			choice = ParseChoice(string(key.Rune()))
		}
		outcome := ex.Apply(choice)

		status = g.outcomeStatus(outcome, choice)
		if outcome == OutcomeMoved {
			span.AddEvent("room.enter", trace.WithAttributes(attribute.String("room.name", ex.Current().Name)))
		}
	}

	renderer.Render(g.finalView(ex))
	g.waitForKey(screen)
	screen.Close()

	span.SetAttributes(
		attribute.Int("explore.rooms_visited", ex.Log().Len()),
		attribute.String("explore.end_reason", ex.Reason().String()),
	)

	if err := ex.Log().Report(g.out, g.printer); err != nil {
		return ex.Log(), fmt.Errorf("write report: %w", err)
	}
	return ex.Log(), nil
}

func (g *Game) roomView(ex *Explorer, status string) ui.View {
	room := ex.Current()
	lines := []string{g.printer.Sprintf(i18n.ChooseOption)}
	for _, opt := range ex.Options() {
		switch opt.Choice {
		case ChoiceLeft:
			lines = append(lines, g.printer.Sprintf(i18n.OptionLeft, opt.Room.Name))
		case ChoiceRight:
			lines = append(lines, g.printer.Sprintf(i18n.OptionRight, opt.Room.Name))
		case ChoiceExit:
			lines = append(lines, g.printer.Sprintf(i18n.OptionExit))
		}
	}
	return ui.View{
		Title:      g.printer.Sprintf(i18n.YouAreIn, room.Name),
		TitleColor: room.Color,
		Lines:      lines,
		Status:     status,
	}
}

func (g *Game) finalView(ex *Explorer) ui.View {
	room := ex.Current()
	var ending string
	switch ex.Reason() {
	case EndLeaf:
		ending = g.printer.Sprintf(i18n.LeafReached)
	case EndExit:
		ending = g.printer.Sprintf(i18n.PlayerExited)
	case EndInputClosed:
		ending = g.printer.Sprintf(i18n.InputClosed)
	}

	lines := []string{ending, "", g.printer.Sprintf(i18n.VisitedHeader)}
	for i, name := range ex.Log().Names() {
		lines = append(lines, g.printer.Sprintf(i18n.VisitedEntry, strconv.Itoa(i+1), name))
	}
	return ui.View{
		Title:      g.printer.Sprintf(i18n.YouAreIn, room.Name),
		TitleColor: room.Color,
		Lines:      lines,
		Status:     g.printer.Sprintf(i18n.PressAnyKey),
	}
}

func (g *Game) outcomeStatus(outcome Outcome, choice Choice) string {
	switch outcome {
	case OutcomeInvalid:
		return g.printer.Sprintf(i18n.InvalidOption)
	case OutcomeUnavailable:
		if choice == ChoiceLeft {
			return g.printer.Sprintf(i18n.LeftUnavailable)
		}
		return g.printer.Sprintf(i18n.RightUnavailable)
	default:
		return ""
	}
}

// waitForKey blocks until a key is pressed or the screen goes away.
func (g *Game) waitForKey(screen *ui.Screen) {
	for {
		switch screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
