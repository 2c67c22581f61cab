package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide root logger. Handlers and services
// derive their own subloggers from it, so the level and format are fixed
// here once at startup.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if cfg.Format != "console" {
		// JSON to stdout for anything that scrapes logs.
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(out).With().Timestamp().Logger()
}
