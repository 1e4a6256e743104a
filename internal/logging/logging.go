package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls logger verbosity.
type Level int8

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger emits structured JSON logs. Fields are passed as an optional map so
// call sites stay readable without pre-building zap fields.
type Logger struct {
	zl    *zap.Logger
	level zap.AtomicLevel
}

// Default is the package-level logger used by the package-level functions.
var Default = New()

// New creates a JSON logger writing to stdout at info level.
func New() *Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            level,
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	zl, err := cfg.Build()
	if err != nil {
		zl = zap.NewExample()
	}

	return &Logger{zl: zl, level: level}
}

// SetLevel changes the minimum level the logger emits.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.zl.Debug(msg, zapFields(fields)...)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.zl.Info(msg, zapFields(fields)...)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.zl.Warn(msg, zapFields(fields)...)
}

func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	l.zl.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered entries. Safe to call at shutdown.
func (l *Logger) Sync() {
	_ = l.zl.Sync()
}

// SetDefaultLevel adjusts the package-level logger.
func SetDefaultLevel(level Level) {
	Default.SetLevel(level)
}

func Debug(msg string, fields ...map[string]interface{}) { Default.Debug(msg, fields...) }
func Info(msg string, fields ...map[string]interface{})  { Default.Info(msg, fields...) }
func Warn(msg string, fields ...map[string]interface{})  { Default.Warn(msg, fields...) }
func Error(msg string, fields ...map[string]interface{}) { Default.Error(msg, fields...) }

func zapFields(fields []map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields[0]))
	for _, m := range fields {
		for k, v := range m {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}
