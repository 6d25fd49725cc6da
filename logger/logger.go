package logger

import (
	"log/slog"
	"os"
	"strings"
)

var global = slog.Default()

// Init configures the process-wide structured logger. Format is "json" or
// "text"; level is one of debug, info, warn, error.
func Init(level, format string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.ToLower(format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	global = slog.New(handler)
	slog.SetDefault(global)
}

func Debug(msg string, args ...any) { global.Debug(msg, args...) }
func Info(msg string, args ...any)  { global.Info(msg, args...) }
func Warn(msg string, args ...any)  { global.Warn(msg, args...) }
func Error(msg string, args ...any) { global.Error(msg, args...) }

func Fatal(msg string, args ...any) {
	global.Error(msg, args...)
	os.Exit(1)
}

// With returns a child logger with extra fields attached.
func With(args ...any) *slog.Logger { return global.With(args...) }
