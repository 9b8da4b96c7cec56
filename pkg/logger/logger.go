package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger on stdout tagged with component.
func New(component string, extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo, component, extractors...)
}

// NewWithWriter is New with an explicit destination and minimum level.
func NewWithWriter(w io.Writer, level slog.Level, component string, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return withComponent(slog.New(newHandler([]slog.Handler{h}, extractors)), component)
}

// NewNope returns a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withComponent(l *slog.Logger, component string) *slog.Logger {
	if component == "" {
		return l
	}
	return l.With(slog.String("component", component))
}
