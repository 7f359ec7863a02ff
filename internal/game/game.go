package game

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mansion/internal/i18n"
	"github.com/samdwyer/mansion/internal/mansion"
	"github.com/samdwyer/mansion/internal/mapdata"
	"github.com/samdwyer/mansion/internal/telemetry"
	"github.com/samdwyer/mansion/internal/ui"
)

// Game ties together map loading, one exploration session and teardown.
type Game struct {
	cfg     Config
	in      io.Reader
	out     io.Writer
	printer *i18n.Printer

	// newScreen opens the full-screen front end; replaced in tests.
	newScreen func() (*ui.Screen, error)
}

// New creates a new game instance.
func New(cfg Config, in io.Reader, out io.Writer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	printer, err := i18n.NewPrinter(cfg.Locale)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:       cfg,
		in:        in,
		out:       out,
		printer:   printer,
		newScreen: ui.NewScreen,
	}, nil
}

// Run builds the mansion, explores it once, reports the visited rooms and
// releases the map.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	root, err := g.loadMansion()
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Int("mansion.rooms", mansion.Count(root)),
		attribute.String("game.locale", g.printer.Locale()),
		attribute.String("game.interface", g.cfg.Interface),
	)

	fmt.Fprintln(g.out, g.printer.Sprintf(i18n.Welcome))
	fmt.Fprintln(g.out, g.printer.Sprintf(i18n.StartFrom, root.Name))

	var visits *VisitLog
	switch g.cfg.Interface {
	case InterfaceScreen:
		visits, err = g.runScreen(ctx, root)
	default:
		visits, err = NewSession(g.in, g.out, g.printer).Run(ctx, root)
	}

	// Teardown: the log references rooms, so it goes first.
	if visits != nil {
		visits.Reset()
	}
	released := mansion.Release(root, nil)
	span.SetAttributes(attribute.Int("mansion.released", released))

	if err != nil {
		span.RecordError(err)
	}
	return err
}

// loadMansion returns the built-in mansion, or the one in cfg.MapPath.
func (g *Game) loadMansion() (*mansion.Room, error) {
	if g.cfg.MapPath == "" {
		return mansion.NewDefault(), nil
	}
	file, err := mapdata.LoadMansionFile(g.cfg.MapPath)
	if err != nil {
		return nil, err
	}
	root, err := mansion.FromDef(file.Root)
	if err != nil {
		return nil, fmt.Errorf("build map %s: %w", g.cfg.MapPath, err)
	}
	return root, nil
}
