package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// JSONLogger writes one JSON object per message using zap.
// Safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	sugar *zap.SugaredLogger
}

// NewJSONLogger creates a JSONLogger writing to out.
// Verbose messages are emitted at debug level and only when verbose is true.
func NewJSONLogger(out io.Writer, verbose bool) *JSONLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(out)),
		level,
	)
	return &JSONLogger{sugar: zap.New(core).Sugar()}
}

// Verbose logs at debug level.
func (l *JSONLogger) Verbose(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs at info level.
func (l *JSONLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs at warn level.
func (l *JSONLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs at error level.
func (l *JSONLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *JSONLogger) Sync() error {
	return l.sugar.Sync()
}
