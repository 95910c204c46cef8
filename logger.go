package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a structured slog.Logger with the given level. Output is
// text on an interactive terminal and JSON otherwise; when logFile is set the
// same records are also written to a rotating file.
func NewLogger(level slog.Leveler, logFile string) (*slog.Logger, io.Closer) {
	out := io.Writer(os.Stderr)
	var closer io.Closer = nopCloser{}
	if logFile != "" {
		fw := &lumberjack.Logger{
			Filename:   logFile,
			LocalTime:  true,
			Compress:   true,
			MaxSize:    20, // MB
			MaxAge:     14,
			MaxBackups: 3,
		}
		out = io.MultiWriter(os.Stderr, fw)
		closer = fw
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if logFile == "" && isatty.IsTerminal(os.Stderr.Fd()) {
		h = slog.NewTextHandler(out, opts)
	} else {
		h = slog.NewJSONHandler(out, opts)
	}
	return slog.New(h), closer
}

// ParseLevel maps a config level name onto slog; debug forces LevelDebug.
func ParseLevel(name string, debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
