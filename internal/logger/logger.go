// Package logger builds the zap logger used across maaget.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// SetLevel changes the log level for all loggers created by New.
func SetLevel(l string) {
	level.SetLevel(getLevel(l))
}

// New creates a console logger writing to stderr so that command output
// stays on stdout.
func New() *zap.Logger {
	core := zapcore.NewCore(
		getConsoleEncoder(),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core)
}

func getLevel(l string) zapcore.Level {
	switch l {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func getConsoleEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.TimeKey = "time"
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(conf)
}
