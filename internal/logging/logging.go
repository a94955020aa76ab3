// Package logging builds the slog loggers used by binder commands.
//
// Interactive commands own the terminal, so a logger without a Path discards
// everything unless the caller asks for stderr explicitly.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options describes logger construction parameters
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Path   string // log file, "stderr", or empty to discard
}

// New constructs a logger. The returned close function releases the log file
// and is safe to call when no file was opened.
func New(opts Options) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	w, closeFn, err := openWriter(opts.Path)
	if err != nil {
		return nil, noop, err
	}
	if w == nil {
		return Discard(), noop, nil
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		closeFn()
		return nil, noop, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(handler), closeFn, nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openWriter(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch trimmed := strings.TrimSpace(path); trimmed {
	case "":
		return nil, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	case "stdout":
		return os.Stdout, noop, nil
	default:
		if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, noop, fmt.Errorf("ensure log directory: %w", err)
			}
		}
		file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file %s: %w", trimmed, err)
		}
		return file, file.Close, nil
	}
}
