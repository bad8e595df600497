// Package logging builds the zerolog loggers used by the breedplan CLI and
// handed to library code through options such as breedtree.WithLogger.
//
// Settings come from a Profile default, then the application config, then the
// BREEDPLAN_LOG_* environment variables, later sources winning.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "BREEDPLAN_LOG_LEVEL"
	EnvLogTimestamp = "BREEDPLAN_LOG_TIMESTAMP"
	EnvLogNoColor   = "BREEDPLAN_LOG_NOCOLOR"
)

// Profile selects the default settings.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger configuration.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

// DefaultConfig returns the defaults of profile: info with timestamps at
// runtime, debug without timestamps or colour under test.
func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false, NoColor: true}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// ApplyEnv overrides cfg with any valid BREEDPLAN_LOG_* variable.
// Unparseable values are ignored.
func ApplyEnv(cfg *Config) {
	applyLookup(cfg, os.Getenv)
}

func applyLookup(cfg *Config, getenv func(string) string) {
	if lvl, ok := ParseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// New returns a logger writing to w. A terminal w gets zerolog's console
// writer (coloured unless cfg.NoColor); anything else gets JSON lines.
func New(w io.Writer, cfg Config) zerolog.Logger {
	out := w
	if isTerminal(w) {
		out = zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: time.Kitchen}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level. The second result is false
// for empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
