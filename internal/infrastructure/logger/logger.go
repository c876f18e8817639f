package logger

import (
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/pedelocal/pedelocal-order-service/internal/config"
)

// MustSetup builds the process-wide slog logger from LogConfig and installs
// it as the default.
func MustSetup(cfg config.LogConfig) *slog.Logger {
	var out io.Writer
	switch cfg.LogOutput {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		f, err := os.OpenFile(cfg.LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log output %s: %v", cfg.LogOutput, err)
		}
		out = f
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
