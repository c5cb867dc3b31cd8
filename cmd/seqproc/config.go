package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/seqproc/seqproc/internal/config"
)

// seqproc.toml key mapping onto pipeline options.
type fileConfig struct {
	Workers  int    `toml:"workers"`
	LogLevel string `toml:"log_level"`
	Quiet    bool   `toml:"quiet"`
	File     string `toml:"file"`
}

// loadOptions overlays explicitly-set TOML keys onto the defaults, so an
// absent key never clobbers a default with its zero value.
func loadOptions(path string) (config.Options, error) {
	opts := config.DefaultOptions()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config.Options{}, fmt.Errorf("load seqproc config: %w", err)
	}

	if meta.IsDefined("workers") {
		opts.Workers = raw.Workers
	}
	if meta.IsDefined("log_level") {
		opts.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("quiet") {
		opts.Quiet = raw.Quiet
	}
	if meta.IsDefined("file") {
		opts.File = strings.TrimSpace(raw.File)
	}

	if err := config.Validate(opts); err != nil {
		return config.Options{}, fmt.Errorf("load seqproc config: %w", err)
	}
	return opts, nil
}
