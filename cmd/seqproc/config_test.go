package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seqproc/seqproc/internal/config"
	"github.com/seqproc/seqproc/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqproc.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOptionsOverlaysDefinedKeys(t *testing.T) {
	testlog.Start(t)

	path := writeConfig(t, `
workers = 2
quiet = true
`)
	opts, err := loadOptions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Workers != 2 {
		t.Fatalf("expected workers=2, got %d", opts.Workers)
	}
	if !opts.Quiet {
		t.Fatalf("expected quiet=true")
	}
	// absent keys keep their defaults
	if opts.LogLevel != config.DefaultOptions().LogLevel {
		t.Fatalf("log_level should keep default, got %q", opts.LogLevel)
	}
}

func TestLoadOptionsRejectsExplicitZeroWorkers(t *testing.T) {
	path := writeConfig(t, "workers = 0\n")
	if _, err := loadOptions(path); err == nil {
		t.Fatalf("explicit workers=0 must fail validation")
	}
}

func TestLoadOptionsRejectsUnknownLevel(t *testing.T) {
	path := writeConfig(t, `log_level = "chatty"`)
	if _, err := loadOptions(path); err == nil {
		t.Fatalf("unknown log level must fail validation")
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := loadOptions(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("missing config file must error")
	}
}

func TestLoadOptionsTrimsFields(t *testing.T) {
	path := writeConfig(t, `
log_level = "  debug  "
file = "  exprs.txt "
`)
	opts, err := loadOptions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.LogLevel != "debug" {
		t.Fatalf("expected trimmed level, got %q", opts.LogLevel)
	}
	if opts.File != "exprs.txt" {
		t.Fatalf("expected trimmed file, got %q", opts.File)
	}
}
