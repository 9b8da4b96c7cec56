// Package logger builds the slog loggers used by the template helpers and the
// example site.
//
// Loggers write JSON, carry a "component" attribute and run a list of context
// extractors on every record, so values such as the template being rendered
// or the request path are attached without passing them around:
//
//	log := logger.New("templatetools", logger.TemplateExtractor, logger.PathExtractor)
//	ctx := logger.WithTemplate(ctx, "index.html")
//	log.DebugContext(ctx, "conditional_href degraded", slog.String("url_name", "news"))
//
// NewWithSentry additionally forwards warnings and errors to Sentry and falls
// back to stdout only when no DSN is configured. NewNope discards everything
// and is the default wherever a logger is optional.
package logger
