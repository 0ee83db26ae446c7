package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap logger to the application's field-map logging API.
type ZapLogger struct {
	z *zap.Logger
}

// New creates a ZapLogger. Verbose loggers write debug-level entries to
// stderr; otherwise everything is discarded so the console output stays clean.
func New(verbose bool) *ZapLogger {
	if !verbose {
		return &ZapLogger{z: zap.NewNop()}
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	z, err := config.Build()
	if err != nil {
		z = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		))
	}
	return &ZapLogger{z: z}
}

// NewWithCore wraps an existing zap core; used by tests to observe entries.
func NewWithCore(core zapcore.Core) *ZapLogger {
	return &ZapLogger{z: zap.New(core)}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.z.Debug(msg, toFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.z.Info(msg, toFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.z.Warn(msg, toFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.z.Error(msg, append(toFields(fields), zap.Error(err))...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() {
	_ = l.z.Sync()
}

func toFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
