package config

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "NUMGUESS_LANG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "console" || cfg.Lang != "en" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadReadsEnvAndFlags(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("NUMGUESS_LANG", "sv")

	cfg, err := Load([]string{"-lang", "en"}, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Lang != "en" {
		t.Fatalf("expected flag to override lang, got %q", cfg.Lang)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("expected env values, got %+v", cfg)
	}
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	_, err := Load([]string{"-difficulty", "hard"}, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "parse flags:") {
		t.Fatalf("expected parse flags error, got %v", err)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	if _, err := Load(nil, io.Discard); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}
