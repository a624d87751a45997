// Package logger holds the process-wide structured logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance. It is a no-op logger until
// Initialize is called, so library code can log unconditionally.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger at the given level. Output goes to
// stderr in the console format, which suits a short-lived CLI process.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}
