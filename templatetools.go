package templatetools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/templatetools/pkg/collection"
	"github.com/dmitrymomot/templatetools/pkg/humanize"
	"github.com/dmitrymomot/templatetools/pkg/i18n"
	"github.com/dmitrymomot/templatetools/pkg/logger"
	"github.com/dmitrymomot/templatetools/pkg/settings"
	"github.com/dmitrymomot/templatetools/pkg/urls"
)

// Library holds the collaborators used by the template functions.
// It is safe for concurrent use once constructed.
type Library struct {
	translator *i18n.Translator
	resolver   urls.Resolver
	registry   *collection.Registry
	settings   settings.Settings
	logger     *slog.Logger
	now        func() time.Time

	humanizer *humanize.Humanizer
}

// New creates a Library. Without options it uses the embedded Icelandic
// catalog, an empty collection registry and a discarding logger.
func New(opts ...Option) (*Library, error) {
	l := &Library{
		registry: collection.NewRegistry(),
		settings: settings.Settings{LanguageCode: settings.DefaultLanguageCode},
		logger:   logger.NewNope(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	h, err := humanize.New(
		humanize.WithTranslator(l.translator),
		humanize.WithClock(l.now),
	)
	if err != nil {
		return nil, fmt.Errorf("templatetools: %w", err)
	}
	l.humanizer = h

	return l, nil
}

// Humanizer returns the formatter backing the template functions.
func (l *Library) Humanizer() *humanize.Humanizer {
	return l.humanizer
}

// Registry returns the collection registry used by get_list_of_objects.
func (l *Library) Registry() *collection.Registry {
	return l.registry
}

// Bind evaluates collection directives such as
// "get_list_of_objects news article as articles" into scope.
// Each directive is parsed before any source is queried.
func (l *Library) Bind(ctx context.Context, scope map[string]any, directives ...string) error {
	if scope == nil {
		return fmt.Errorf("%w: Bind needs a non-nil scope", ErrInvalidArgument)
	}

	nodes := make([]*collection.Node, 0, len(directives))
	for _, d := range directives {
		node, err := l.registry.Parse(d)
		if err != nil {
			return err
		}
		nodes = append(nodes, node)
	}

	for _, node := range nodes {
		if _, err := node.Render(ctx, scope); err != nil {
			l.logger.ErrorContext(ctx, "collection directive failed",
				slog.String("directive", node.String()),
				slog.String("error", err.Error()),
			)
			return err
		}
	}

	return nil
}
