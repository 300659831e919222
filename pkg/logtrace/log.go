package logtrace

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContextKey is the type used for storing values in context
type ContextKey string

// CorrelationIDKey is the key for storing correlation ID in context
const CorrelationIDKey ContextKey = "correlation_id"

var logger *zap.Logger

// Setup initializes the logger for readable output in all modes.
// The log level is taken from the LOG_LEVEL environment variable.
func Setup(serviceName string) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(getLogLevel())

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(err)
	}
	logger = logger.Named(serviceName)
}

func getLogLevel() zapcore.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// CtxWithCorrelationID stores a correlation ID inside the context
func CtxWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

func extractCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

func logWithLevel(level zapcore.Level, ctx context.Context, message string, fields Fields) {
	if logger == nil {
		Setup("sep39")
	}

	zapFields := make([]zap.Field, 0, len(fields)+1)
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	if id := extractCorrelationID(ctx); id != "" {
		zapFields = append(zapFields, zap.String(FieldCorrelationID, id))
	}

	switch level {
	case zapcore.DebugLevel:
		logger.Debug(message, zapFields...)
	case zapcore.InfoLevel:
		logger.Info(message, zapFields...)
	case zapcore.WarnLevel:
		logger.Warn(message, zapFields...)
	case zapcore.ErrorLevel:
		logger.Error(message, zapFields...)
	case zapcore.FatalLevel:
		logger.Fatal(message, zapFields...)
	}
}

// Debug logs a debug message with structured fields
func Debug(ctx context.Context, message string, fields Fields) {
	logWithLevel(zapcore.DebugLevel, ctx, message, fields)
}

// Info logs an informational message with structured fields
func Info(ctx context.Context, message string, fields Fields) {
	logWithLevel(zapcore.InfoLevel, ctx, message, fields)
}

// Warn logs a warning message with structured fields
func Warn(ctx context.Context, message string, fields Fields) {
	logWithLevel(zapcore.WarnLevel, ctx, message, fields)
}

// Error logs an error message with structured fields
func Error(ctx context.Context, message string, fields Fields) {
	logWithLevel(zapcore.ErrorLevel, ctx, message, fields)
}

// Fatal logs an error message and exits without a stack trace
func Fatal(ctx context.Context, message string, fields Fields) {
	logWithLevel(zapcore.ErrorLevel, ctx, message, fields)
	os.Exit(1)
}
