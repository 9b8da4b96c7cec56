package logger

import (
	"context"
	"log/slog"
)

type templateKey struct{}

type pathKey struct{}

// WithTemplate records the name of the template being rendered.
func WithTemplate(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, templateKey{}, name)
}

// WithPath records the request path being served.
func WithPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKey{}, path)
}

// TemplateExtractor adds the "template" attribute set by WithTemplate.
func TemplateExtractor(ctx context.Context) (slog.Attr, bool) {
	if name, ok := ctx.Value(templateKey{}).(string); ok && name != "" {
		return slog.String("template", name), true
	}
	return slog.Attr{}, false
}

// PathExtractor adds the "path" attribute set by WithPath.
func PathExtractor(ctx context.Context) (slog.Attr, bool) {
	if p, ok := ctx.Value(pathKey{}).(string); ok && p != "" {
		return slog.String("path", p), true
	}
	return slog.Attr{}, false
}
