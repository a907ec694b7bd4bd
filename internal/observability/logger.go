package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide JSON logger. Every line carries the
// service name and environment so log aggregation can tell deployments
// apart; trace ids are injected per record by TraceHandler.
func NewLogger(env string) *slog.Logger {
	level := slog.LevelInfo

	if env == "dev" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(NewTraceHandler(handler)).With(
		slog.String("service", "taskflow"),
		slog.String("env", env),
	)
}
