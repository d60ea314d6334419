// Package log provides the process wide structured logger.
//
// Sugar is safe to use before New is called; it discards everything until
// then.
package log

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface used by the rest of the module.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
}

// WrappedLogger wraps a zap SugaredLogger.
type WrappedLogger struct {
	*zap.SugaredLogger
}

// Sugar is the global logger.
var Sugar = &WrappedLogger{zap.NewNop().Sugar()}

// New configures the global logger at the given level. "NOOP" disables
// logging entirely.
func New(level string) error {
	if strings.EqualFold(level, "NOOP") {
		Sugar = &WrappedLogger{zap.NewNop().Sugar()}
		return nil
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = lvl > zapcore.DebugLevel

	l, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}
	Sugar = &WrappedLogger{l.Sugar()}
	return nil
}

// WithServiceName returns a child logger tagged with the service name.
func (w *WrappedLogger) WithServiceName(name string) *WrappedLogger {
	return &WrappedLogger{w.SugaredLogger.With("service", name)}
}

// OnExit flushes buffered log entries.
func OnExit() {
	_ = Sugar.Sync()
}
