package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

const (
	LevelTrace = slog.LevelDebug - 4
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var ErrUnknownLevel = errors.New("unknown log level")

var (
	level   = new(slog.LevelVar)
	current atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(LevelInfo)
	SetOutput(os.Stdout)
}

// SetOutput redirects every subsequent log line to w.
func SetOutput(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && a.Value.Any() == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	})
	current.Store(slog.New(h))
}

func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel accepts trace, debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, ErrUnknownLevel
}

func Info(message string) {
	log(LevelInfo, message)
}

func Debug(message string) {
	log(LevelDebug, message)
}

func Trace(message string) {
	log(LevelTrace, message)
}

func Error(message string, err ...error) {
	if e := errors.Join(err...); e != nil {
		log(LevelError, message, slog.String("error", e.Error()))
		return
	}
	log(LevelError, message)
}

func Warn(message string) {
	log(LevelWarn, message)
}

func log(l slog.Level, message string, attrs ...slog.Attr) {
	current.Load().LogAttrs(context.Background(), l, message, attrs...)
}
