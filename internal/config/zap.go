package config

import (
	"strings"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevel starts at debug so bootstrap messages are visible until
// LOG_LEVEL is read.
var logLevel = zap.NewAtomicLevelAt(zapcore.DebugLevel)

func parseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func NewZap() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = logLevel
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.StacktraceKey = ""
	cfg.EncoderConfig.TimeKey = "timestamp"

	log, _ := cfg.Build()

	return log
}

func SetLogLevel(config *koanf.Koanf, log *zap.Logger) {
	level := parseLevel(config.String("LOG_LEVEL"))
	logLevel.SetLevel(level)

	log.Info("log level set", zap.String("level", level.String()))
}
