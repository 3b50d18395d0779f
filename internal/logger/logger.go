package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

type ctxKey string

const requestIDKey ctxKey = ContextKeyRequestID

// InitLogger installs the process-wide slog logger writing to stdout.
func InitLogger(cfg Config) *slog.Logger {
	return InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the process-wide slog logger writing to w.
// Every record carries the service, version and environment attributes.
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	l := slog.New(NewHandler(cfg, w))
	slog.SetDefault(l)
	return l
}

// NewHandler builds the slog handler for cfg: JSON, plain text, or tint's
// coloured console output for the pretty format.
func NewHandler(cfg Config, w io.Writer) slog.Handler {
	var h slog.Handler
	switch {
	case cfg.IsJSON():
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel(), AddSource: cfg.AddSource})
	case cfg.IsPretty():
		h = tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel(),
			AddSource:  cfg.AddSource,
			TimeFormat: PrettyTimeFormat,
		})
	default:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel(), AddSource: cfg.AddSource})
	}
	return h.WithAttrs(cfg.BaseAttributes())
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GetRequestID returns the request ID or "" when none is set.
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}

// Info logs at info level on the default logger.
func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

// Warn logs at warn level on the default logger.
func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

// Error logs at error level on the default logger.
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }

// Debug logs at debug level on the default logger.
func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }
