// Package logging builds the zerolog loggers used by the rowstream binaries.
package logging

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"os"
	"strings"
	"time"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "LITETABLE_LOG_LEVEL"

type Config struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string
	// Debug forces the debug level unless the level is already more verbose.
	Debug bool
	// Console writes human readable lines instead of JSON.
	Console bool
	// Output defaults to stderr.
	Output io.Writer
}

// New builds a logger for cfg without touching the global logger.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := resolveLevel(cfg)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Configure sets the global level and logger.
func Configure(cfg Config) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(logger.GetLevel())
	log.Logger = logger
	return nil
}

func resolveLevel(cfg Config) (zerolog.Level, error) {
	name := cfg.Level
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		name = env
	}
	if name == "" {
		name = zerolog.InfoLevel.String()
	}

	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	if cfg.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	return level, nil
}
