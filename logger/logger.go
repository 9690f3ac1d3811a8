// logger.go provides contextual logging for the framesize project.

// Package logger is a thin facade over go-belt's contextual logger.
//
// The pure dimension engine never logs; the packages around it
// (scaler, presets, job configs and the CLI) log through the logger
// carried by the context.
package logger

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
)

// Logger is just a type-alias for logger.Logger for convenience.
type Logger = logger.Logger

type Level = logger.Level

const (
	LevelFatal   = logger.LevelFatal
	LevelPanic   = logger.LevelPanic
	LevelError   = logger.LevelError
	LevelWarning = logger.LevelWarning
	LevelInfo    = logger.LevelInfo
	LevelDebug   = logger.LevelDebug
	LevelTrace   = logger.LevelTrace
)

// New returns a logrus-backed logger writing to stderr.
func New(level Level) Logger {
	return logrus.Default().WithLevel(level)
}

// CtxWithNew installs a new logger of the given level into the context
// and makes it the default one.
func CtxWithNew(ctx context.Context, level Level) (context.Context, Logger) {
	l := New(level)
	logger.Default = func() Logger {
		return l
	}
	return logger.CtxWithLogger(ctx, l), l
}

// Debugf is just a shorthand for Logf(ctx, logger.LevelDebug, ...)
func Debugf(ctx context.Context, format string, args ...any) {
	logger.Debugf(ctx, format, args...)
}

// Panic is just a shorthand for Log(ctx, logger.LevelPanic, ...)
//
// Be aware: Panic level also triggers a `panic`.
func Panic(ctx context.Context, values ...any) {
	logger.Panic(ctx, values...)
}
