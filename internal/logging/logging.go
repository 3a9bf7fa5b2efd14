// Package logging builds the structured logger used by the CLI. Records go
// to a size-rotated JSON file so they never interleave with the terminal UI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much is logged.
type Options struct {
	File  string // empty disables logging
	Level string // debug, info, warn or error
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a level name onto slog.Level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// New returns a logger writing JSON lines to opts.File. The returned closer
// releases the file and must be called on exit.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	if opts.File == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h), w, nil
}
