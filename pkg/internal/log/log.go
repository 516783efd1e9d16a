package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kamrankamilli/touchfwd/pkg/config"
)

// Logger is a leveled logger carrying a fixed set of structured fields.
type Logger struct {
	s *zap.SugaredLogger
}

var root atomic.Pointer[Logger]

func init() {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)
	Replace(zap.New(core))
}

// Replace swaps the backing zap logger. Intended for tests and embedding.
func Replace(z *zap.Logger) {
	root.Store(&Logger{s: z.WithOptions(zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()})
}

// With returns a logger that adds the given key/value pairs to every entry.
func With(keysAndValues ...interface{}) *Logger { return root.Load().With(keysAndValues...) }

// Sync flushes buffered entries.
func Sync() { _ = root.Load().s.Sync() }

func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{s: l.s.With(keysAndValues...)}
}

func (l *Logger) Info(args ...interface{})               { l.s.Info(args...) }
func (l *Logger) Infof(f string, args ...interface{})    { l.s.Infof(f, args...) }
func (l *Logger) Warningf(f string, args ...interface{}) { l.s.Warnf(f, args...) }
func (l *Logger) Error(args ...interface{})              { l.s.Error(args...) }
func (l *Logger) Errorf(f string, args ...interface{})   { l.s.Errorf(f, args...) }

// Debugw logs only when config.Debug is set.
func (l *Logger) Debugw(msg string, kv ...interface{}) {
	if config.Debug {
		l.s.Debugw(msg, kv...)
	}
}

func Info(args ...interface{})             { root.Load().s.Info(args...) }
func Errorf(f string, args ...interface{}) { root.Load().s.Errorf(f, args...) }
