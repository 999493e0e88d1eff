package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// Logger wraps zap.Logger with context aware helpers. Direct zap calls report their own caller;
// the *Context helpers log through ctxLogger, which skips the helper frame.
type Logger struct {
	*zap.Logger
	ctxLogger *zap.Logger
}

func wrap(zl *zap.Logger) *Logger {
	return &Logger{Logger: zl, ctxLogger: zl.WithOptions(zap.AddCallerSkip(1))}
}

// New creates a new Logger with the given level and encoding ("json" or "console").
func New(level, encoding string) (*Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if encoding == "" {
		encoding = "json"
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = encoding
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return wrap(zl), nil
}

// NewFromZap wraps an existing zap.Logger. Mostly used by tests.
func NewFromZap(zl *zap.Logger) *Logger {
	return wrap(zl)
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

// WithRequestID stores the request id in the context so *Context log calls pick it up.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func withContext(ctx context.Context, fields []zap.Field) []zap.Field {
	if id := RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return fields
}

// DebugContext logs at debug level including the request id from ctx.
func (l *Logger) DebugContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.ctxLogger.Debug(msg, withContext(ctx, fields)...)
}

// InfoContext logs at info level including the request id from ctx.
func (l *Logger) InfoContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.ctxLogger.Info(msg, withContext(ctx, fields)...)
}

// WarnContext logs at warn level including the request id from ctx.
func (l *Logger) WarnContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.ctxLogger.Warn(msg, withContext(ctx, fields)...)
}

// ErrorContext logs at error level including the request id from ctx.
func (l *Logger) ErrorContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.ctxLogger.Error(msg, withContext(ctx, fields)...)
}

// Field creates a zap field of any type.
func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// StringField creates a string field.
func StringField(key, value string) zap.Field {
	return zap.String(key, value)
}

// IntField creates an int field.
func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// FloatField creates a float64 field.
func FloatField(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

// ErrorField creates an error field.
func ErrorField(err error) zap.Field {
	return zap.Error(err)
}
