// Package logx is the process-wide leveled logger. It wraps a zap SugaredLogger so
// call sites stay printf-style while output stays structured.
package logx

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

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

// ParseLevel maps a textual level to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar  = build(false, level)
	isJSON bool
)

func build(json bool, lvl zap.AtomicLevel) *zap.SugaredLogger {
	encoding := "console"
	if json {
		encoding = "json"
	}
	cfg := zap.Config{
		Encoding:         encoding,
		Level:            lvl,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:   "msg",
			LevelKey:     "level",
			EncodeLevel:  zapcore.LowercaseLevelEncoder,
			TimeKey:      "time",
			EncodeTime:   zapcore.RFC3339TimeEncoder,
			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// SetLevel changes the minimum level at runtime
func SetLevel(l Level) {
	level.SetLevel(l.zapLevel())
}

// SetJSON switches between console and JSON encoding
func SetJSON(json bool) {
	mu.Lock()
	defer mu.Unlock()
	if json == isJSON {
		return
	}
	isJSON = json
	sugar = build(json, level)
}

// SetLogger replaces the underlying zap logger, mostly for tests
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Sync flushes buffered entries
func Sync() {
	_ = current().Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(args ...any)                 { current().Debug(args...) }
func Debugf(format string, args ...any) { current().Debugf(format, args...) }
func Info(args ...any)                  { current().Info(args...) }
func Infof(format string, args ...any)  { current().Infof(format, args...) }
func Warn(args ...any)                  { current().Warn(args...) }
func Warnf(format string, args ...any)  { current().Warnf(format, args...) }
func Error(args ...any)                 { current().Error(args...) }
func Errorf(format string, args ...any) { current().Errorf(format, args...) }

// Infow logs with structured key/value pairs
func Infow(msg string, keysAndValues ...any) { current().Infow(msg, keysAndValues...) }

// Warnw logs with structured key/value pairs
func Warnw(msg string, keysAndValues ...any) { current().Warnw(msg, keysAndValues...) }
