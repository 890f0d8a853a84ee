// Package logging contains the zap-backed loggers used by the converters host and the CLI.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultTimeFormatStr is the default time format string for log appenders.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

var (
	globalMu     sync.RWMutex
	globalLogger = NewDebugLogger("startup")
)

// ReplaceGlobal replaces the global loggers.
func ReplaceGlobal(logger Logger) {
	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
}

// Global returns the global logger.
func Global() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// NewEncoderConfig returns the console encoder config shared by every logger. Stacktraces are
// disabled by the cores, prod keys are used, and levels are colored.
func NewEncoderConfig(inUTC bool) zapcore.EncoderConfig {
	encodeTime := func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		if inUTC {
			t = t.UTC()
		}
		enc.AppendString(t.Format(DefaultTimeFormatStr))
	}
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     encodeTime,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewStdoutCore returns a core that writes every entry it is handed to stdout. Level filtering
// happens in the Logger, not in the core.
func NewStdoutCore(inUTC bool) zapcore.Core {
	return NewWriterCore(os.Stdout, inUTC)
}

// NewWriterCore is like NewStdoutCore but writes to w.
func NewWriterCore(w io.Writer, inUTC bool) zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(NewEncoderConfig(inUTC)),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.LevelEnablerFunc(func(zapcore.Level) bool { return true }),
	)
}

// NewLogger returns a new logger that outputs Info+ logs to stdout in UTC.
func NewLogger(name string) Logger {
	const inUTC = true
	return newImpl(name, NewAtomicLevelAt(INFO), []zapcore.Core{NewStdoutCore(inUTC)})
}

// NewDebugLogger returns a new logger that outputs Debug+ logs to stdout in UTC.
func NewDebugLogger(name string) Logger {
	const inUTC = true
	return newImpl(name, NewAtomicLevelAt(DEBUG), []zapcore.Core{NewStdoutCore(inUTC)})
}

// NewBlankLogger returns a new logger that outputs Debug+ logs in UTC, but without any
// pre-existing outputs.
func NewBlankLogger(name string) Logger {
	return newImpl(name, NewAtomicLevelAt(DEBUG), nil)
}
