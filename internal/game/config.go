package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Front ends selectable with Config.Interface.
const (
	InterfaceLine   = "line"
	InterfaceScreen = "screen"
)

// Config holds game configuration options.
type Config struct {
	// Locale of player-facing messages (e.g., "pt-BR", "en-US").
	Locale string `env:"MANSION_LOCALE" envDefault:"pt-BR"`
	// MapPath optionally points at a JSON map file replacing the built-in mansion.
	MapPath string `env:"MANSION_MAP"`
	// Interface selects the front end: "line" reads commands from standard input,
	// "screen" runs a full-screen terminal view.
	Interface string `env:"MANSION_UI" envDefault:"line"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports unsupported option values.
func (c Config) Validate() error {
	switch c.Interface {
	case InterfaceLine, InterfaceScreen:
		return nil
	default:
		return fmt.Errorf("unknown interface %q (want %q or %q)", c.Interface, InterfaceLine, InterfaceScreen)
	}
}
