package logger

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// ContextExtractor pulls one attribute out of a context. It returns false
// when the context carries nothing to log.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// handler attaches context attributes to a record and delivers it to every
// sink enabled for its level. Extractors run at most once per record and not
// at all when no sink accepts it. A failing sink does not stop delivery to
// the others.
type handler struct {
	sinks      []slog.Handler
	extractors []ContextExtractor
}

func newHandler(sinks []slog.Handler, extractors []ContextExtractor) *handler {
	return &handler{
		sinks: sinks,
		extractors: slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool {
			return ex == nil
		}),
	}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(h.sinks, func(s slog.Handler) bool {
		return s.Enabled(ctx, level)
	})
}

func (h *handler) Handle(ctx context.Context, rec slog.Record) error {
	var (
		errs      []error
		extracted bool
	)
	for _, s := range h.sinks {
		if !s.Enabled(ctx, rec.Level) {
			continue
		}
		if !extracted {
			for _, ex := range h.extractors {
				if attr, ok := ex(ctx); ok {
					rec.AddAttrs(attr)
				}
			}
			extracted = true
		}
		if err := s.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *handler) WithGroup(name string) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *handler) derive(fn func(slog.Handler) slog.Handler) *handler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = fn(s)
	}
	return &handler{sinks: sinks, extractors: h.extractors}
}
