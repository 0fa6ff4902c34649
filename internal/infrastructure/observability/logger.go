package observability

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// InitLogger configures the process-wide zerolog logger. Development gets
// a human-readable console stream at debug level; any other environment
// emits JSON at info level for log shipping.
func InitLogger(serviceName, env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	base := zerolog.New(os.Stdout)
	if env == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		base = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.Kitchen,
		})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = base.With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// LoggerFromContext enriches the global logger with the ids of the active
// trace span so one verification request can be followed across the
// handler, service and adapter logs.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	logger := log.Logger

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		logger = logger.With().
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String()).
			Logger()
	}

	return &logger
}

// GetLogger returns the global logger
func GetLogger() *zerolog.Logger {
	return &log.Logger
}
