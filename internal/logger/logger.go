package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tsdice/emojisummary/internal/config"
)

// New builds the service logger. Console or JSON lines go to out (stderr
// when nil); when cfg.File is set, JSON lines are also written to a rotating
// file.
func New(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var console io.Writer = out
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	w := console
	if cfg.File != "" {
		// lumberjack serializes writes and rotates by size and age.
		w = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ForService tags the logger with the service name and environment.
func ForService(l zerolog.Logger, obs *config.ObservabilityConfig) zerolog.Logger {
	if obs == nil {
		return l
	}
	return l.With().Str("service", obs.ServiceName).Str("env", obs.Environment).Logger()
}
