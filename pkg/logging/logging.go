package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin structured-logging facade over zap's sugared logger.
type Logger struct {
	s *zap.SugaredLogger
}

func New(level string) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	z, err := cfg.Build()
	if err != nil {
		z, _ = zap.NewProduction()
	}

	return &Logger{s: z.Sugar()}
}

// NewNop returns a logger that discards everything. Used by tests and as
// the default when a component is built without an explicit logger.
func NewNop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{s: l.s.Named(name)}
}

func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{s: l.s.With(keyvals...)}
}

func (l *Logger) Debug(msg string, keyvals ...any) {
	l.s.Debugw(msg, keyvals...)
}

func (l *Logger) Info(msg string, keyvals ...any) {
	l.s.Infow(msg, keyvals...)
}

func (l *Logger) Warn(msg string, keyvals ...any) {
	l.s.Warnw(msg, keyvals...)
}

func (l *Logger) Error(msg string, keyvals ...any) {
	l.s.Errorw(msg, keyvals...)
}

// Fatal logs the message and exits the process.
func (l *Logger) Fatal(msg string, keyvals ...any) {
	l.s.Fatalw(msg, keyvals...)
}

func (l *Logger) Sync() error {
	return l.s.Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	case "panic":
		return zapcore.PanicLevel
	default:
		return zapcore.InfoLevel
	}
}
