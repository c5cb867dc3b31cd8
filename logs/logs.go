// Package logs is a small leveled logging facade over zerolog with an
// ANSI-aware console writer. Binaries configure it once at startup through
// internal/logging; library code just calls the printf-style helpers.
package logs

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// Level aliases zerolog's level type so callers never import zerolog.
type Level = zerolog.Level

const (
	TraceLevel = zerolog.TraceLevel
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	Disabled   = zerolog.Disabled
)

// Config controls the global logger built by Configure.
type Config struct {
	Level     Level
	Timestamp bool
	NoColor   bool
	// Bypass skips console formatting and emits raw JSON lines, for when the
	// output is consumed by machines rather than a terminal.
	Bypass bool
	// Writer overrides the destination; defaults to stderr.
	Writer io.Writer
}

func DefaultConfig() Config {
	return Config{Level: InfoLevel, Timestamp: true}
}

var (
	mu     sync.RWMutex
	logger = build(DefaultConfig())
)

// Configure replaces the global logger. Safe to call concurrently with the
// logging helpers.
func Configure(cfg Config) {
	l := build(cfg)
	mu.Lock()
	logger = l
	mu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = colorable.NewColorableStderr()
	}
	if !cfg.Bypass {
		w = zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: time.Kitchen}
	}
	l := zerolog.New(w).Level(cfg.Level)
	if cfg.Timestamp {
		l = l.With().Timestamp().Logger()
	}
	return l
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Log writes an unleveled message that only Disabled suppresses.
func Log(args ...any) {
	l := current()
	l.Log().Msg(fmt.Sprint(args...))
}

// Logf writes an unleveled formatted message.
func Logf(format string, args ...any) {
	l := current()
	l.Log().Msgf(format, args...)
}

func Debug(args ...any) {
	l := current()
	l.Debug().Msg(fmt.Sprint(args...))
}

func Debugf(format string, args ...any) {
	l := current()
	l.Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	l := current()
	l.Info().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	l := current()
	l.Warn().Msgf(format, args...)
}

func Errf(format string, args ...any) {
	l := current()
	l.Error().Msgf(format, args...)
}
