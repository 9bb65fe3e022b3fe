package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// detachLogger moves logging off stderr while a screen owns the terminal.
// Output goes to cfg.LogFile, or nowhere when it is empty. The returned
// close function is never nil.
func (a *app) detachLogger() (func() error, error) {
	if a.cfg.LogFile == "" {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f, a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	a.logger = logger
	return f.Close, nil
}
