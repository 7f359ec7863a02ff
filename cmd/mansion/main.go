// Package main is the entry point for the mansion explorer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/mansion/internal/game"
	"github.com/samdwyer/mansion/internal/telemetry"
)

// config is the process configuration: game options plus telemetry credentials.
type config struct {
	Game game.Config

	HoneycombAPIKey  string `env:"HONEYCOMB_MANSION_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_MANSION_DATASET" envDefault:"mansion"`
}

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if setupOTelEnv(cfg) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg.Game, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// parseConfig loads defaults from the environment, then applies flags.
func parseConfig(args []string) (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fset := flag.NewFlagSet("mansion", flag.ContinueOnError)
	fset.StringVar(&cfg.Game.Locale, "locale", cfg.Game.Locale, "message locale (pt-BR, en-US)")
	fset.StringVar(&cfg.Game.MapPath, "map", cfg.Game.MapPath, "JSON map file replacing the built-in mansion")
	fset.StringVar(&cfg.Game.Interface, "ui", cfg.Game.Interface, "front end: line or screen")
	if err := fset.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Game.Validate()
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured. It reports whether any OTLP destination is configured.
func setupOTelEnv(cfg config) bool {
	if cfg.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombAPIKey, cfg.HoneycombDataset))
		return true
	}
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}
