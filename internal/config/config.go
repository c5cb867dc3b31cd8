package config

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Options is the seqproc pipeline configuration.
type Options struct {
	Workers  int    `toml:"workers"`
	LogLevel string `toml:"log_level"`
	Quiet    bool   `toml:"quiet"`
	File     string `toml:"file"`
}

func DefaultOptions() Options {
	return Options{
		Workers:  4,
		LogLevel: "info",
	}
}

const maxWorkers = 256

func Validate(opts Options) error {
	if opts.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", opts.Workers)
	}
	if opts.Workers > maxWorkers {
		return fmt.Errorf("config: workers must be at most %d, got %d", maxWorkers, opts.Workers)
	}
	switch strings.ToLower(strings.TrimSpace(opts.LogLevel)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off", "none":
		return nil
	default:
		return fmt.Errorf("config: unknown log level %q", opts.LogLevel)
	}
}

// Template renders the default configuration as TOML, for seqproc -init.
func Template() (string, error) {
	out, err := toml.Marshal(DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("config template render: %w", err)
	}
	return string(out), nil
}
