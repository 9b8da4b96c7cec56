package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures error reporting.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT"`
	// Lowest level forwarded as a Sentry log. Errors always become issues.
	MinLevel slog.Level
}

// NewWithSentry logs to stdout and, when cfg.DSN is set, to Sentry.
// Sentry initialisation failures are logged and otherwise ignored.
func NewWithSentry(component string, cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})

	if cfg.DSN == "" {
		return withComponent(slog.New(newHandler([]slog.Handler{stdout}, extractors)), component)
	}

	environment := cfg.Environment
	if environment == "" {
		environment = "production"
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return withComponent(slog.New(newHandler([]slog.Handler{stdout}, extractors)), component)
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	combined := newHandler([]slog.Handler{stdout, sentryHandler}, extractors)
	return withComponent(slog.New(combined), component)
}
