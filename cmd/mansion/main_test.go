package main

import (
	"os"
	"testing"
)

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("MANSION_LOCALE", "en-US")
	t.Setenv("MANSION_UI", "screen")
	t.Setenv("HONEYCOMB_MANSION_API_KEY", "")

	cfg, err := parseConfig([]string{"-ui", "line", "-map", "casa.json"})
	if err != nil {
		t.Fatalf("parseConfig() error: %v", err)
	}
	if cfg.Game.Locale != "en-US" {
		t.Errorf("Locale = %q, want %q", cfg.Game.Locale, "en-US")
	}
	if cfg.Game.Interface != "line" {
		t.Errorf("Interface = %q, want flag value %q", cfg.Game.Interface, "line")
	}
	if cfg.Game.MapPath != "casa.json" {
		t.Errorf("MapPath = %q, want %q", cfg.Game.MapPath, "casa.json")
	}
	if cfg.HoneycombDataset != "mansion" {
		t.Errorf("HoneycombDataset = %q, want default %q", cfg.HoneycombDataset, "mansion")
	}
}

func TestParseConfigRejectsBadInterface(t *testing.T) {
	if _, err := parseConfig([]string{"-ui", "gui"}); err == nil {
		t.Error("parseConfig() should reject -ui gui")
	}
}

func TestSetupOTelEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if setupOTelEnv(config{}) {
		t.Error("setupOTelEnv() without key or endpoint should report disabled")
	}

	if !setupOTelEnv(config{HoneycombAPIKey: "k", HoneycombDataset: "d"}) {
		t.Fatal("setupOTelEnv() with an API key should report enabled")
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "x-honeycomb-team=k,x-honeycomb-dataset=d" {
		t.Errorf("OTEL_EXPORTER_OTLP_HEADERS = %q", got)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT = %q", got)
	}
}
