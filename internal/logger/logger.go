package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = zap.NewNop()

// Init initializes the global logger. Output goes to a file rather than
// stdout because the terminal belongs to the TUI.
func Init(level, path string) {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zap.DebugLevel
	case "info":
		lvl = zap.InfoLevel
	case "warn":
		lvl = zap.WarnLevel
	case "error":
		lvl = zap.ErrorLevel
	default:
		lvl = zap.InfoLevel
	}

	outputs := []string{"stderr"}
	if path != "" {
		outputs = []string{path}
	}

	cfg := zap.Config{
		Encoding:         "json",
		Level:            zap.NewAtomicLevelAt(lvl),
		OutputPaths:      outputs,
		ErrorOutputPaths: outputs,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	l, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger; a broken log file must not take
		// the desk down.
		Log = zap.NewNop()
		return
	}
	Log = l
}
