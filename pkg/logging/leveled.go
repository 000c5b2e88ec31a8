package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type leveled struct {
	next  Logger
	level Level
}

// WithLevel gates next by level, so a configured NONE or INFO also applies to
// a logger supplied by the caller.
func WithLevel(next Logger, level Level) Logger {
	if next == nil || level == LevelNone {
		return Nop()
	}
	return &leveled{next: next, level: level}
}

func (l *leveled) Debug(msg string, fields ...zap.Field) {
	if l.level.Enabled(zapcore.DebugLevel) {
		l.next.Debug(msg, fields...)
	}
}

func (l *leveled) Info(msg string, fields ...zap.Field) {
	if l.level.Enabled(zapcore.InfoLevel) {
		l.next.Info(msg, fields...)
	}
}

func (l *leveled) Error(msg string, fields ...zap.Field) {
	if l.level.Enabled(zapcore.ErrorLevel) {
		l.next.Error(msg, fields...)
	}
}

// Field helpers shared by every flow log event.

func Pipe(name string) zap.Field {
	return zap.String("pipe", name)
}

func Subscription(id string) zap.Field {
	return zap.String("subscription", id)
}

func Message(v any) zap.Field {
	return zap.Any("message", v)
}

func Err(err error) zap.Field {
	return zap.Error(err)
}
