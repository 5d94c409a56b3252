// Package logging builds the daemon's *slog.Logger, following the
// teacher's core/entrypoint.go wiring: a colourized github.com/encodeous/tint
// handler for the console, fanned out with github.com/samber/slog-multi to
// a plain text file handler when a log path is configured.
package logging

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// New builds a logger at the given level, writing colourized output to
// stderr and, if logPath is non-empty, plain text to that file as well.
func New(level slog.Level, logPath string) (*slog.Logger, error) {
	handlers := []slog.Handler{
		tint.NewHandler(os.Stderr, &tint.Options{Level: level}),
	}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("logging: open %s: %w", logPath, err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}
