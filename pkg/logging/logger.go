// Package logging provides the leveled logger the orchestrator reports
// through. Logger is small enough that *zap.Logger satisfies it directly;
// New builds one from a Config.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the user facing verbosity. The zero value means "not set".
type Level string

const (
	LevelNone  Level = "NONE"
	LevelInfo  Level = "INFO"
	LevelDebug Level = "DEBUG"
)

// ParseLevel accepts NONE, INFO or DEBUG in any case.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToUpper(strings.TrimSpace(s))); l {
	case LevelNone, LevelInfo, LevelDebug:
		return l, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

// Decode implements envconfig.Decoder.
func (l *Level) Decode(value string) error {
	parsed, err := ParseLevel(value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Level) String() string {
	return string(l)
}

// Enabled reports whether an event at lvl passes this level.
func (l Level) Enabled(lvl zapcore.Level) bool {
	switch l {
	case LevelNone:
		return false
	case LevelDebug:
		return lvl >= zapcore.DebugLevel
	default:
		return lvl >= zapcore.InfoLevel
	}
}

func (l Level) zapLevel() zapcore.Level {
	if l == LevelDebug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// Logger is the logging collaborator of the orchestrator. Calls never block
// on delivery and return nothing.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

var _ Logger = (*zap.Logger)(nil)

// Config defines logger configuration.
type Config struct {
	Level       Level
	Colors      bool
	OutputPaths []string
}

// DefaultConfig matches the orchestrator defaults: INFO with colors.
func DefaultConfig() Config {
	return Config{
		Level:       LevelInfo,
		Colors:      true,
		OutputPaths: []string{"stdout"},
	}
}

// New creates a console logger. LevelNone yields a no-op logger.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Level == LevelNone {
		return zap.NewNop(), nil
	}
	if cfg.Level == "" {
		cfg.Level = LevelInfo
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stdout"}
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(cfg.Level.zapLevel()),
		Development:       false,
		Encoding:          "console",
		EncoderConfig:     encoderConfig(cfg.Colors),
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	return zapCfg.Build()
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return zap.NewNop()
}

func encoderConfig(colors bool) zapcore.EncoderConfig {
	levelEncoder := zapcore.CapitalLevelEncoder
	if colors {
		levelEncoder = zapcore.CapitalColorLevelEncoder
	}

	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
