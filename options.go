package templatetools

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/templatetools/pkg/collection"
	"github.com/dmitrymomot/templatetools/pkg/i18n"
	"github.com/dmitrymomot/templatetools/pkg/settings"
	"github.com/dmitrymomot/templatetools/pkg/urls"
)

// Option configures the Library.
type Option func(*Library)

// WithTranslator replaces the embedded Icelandic phrases.
func WithTranslator(tr *i18n.Translator) Option {
	return func(l *Library) {
		if tr != nil {
			l.translator = tr
		}
	}
}

// WithResolver sets the reverse URL lookup used by conditional_href.
// Without a resolver conditional_href renders nothing.
func WithResolver(r urls.Resolver) Option {
	return func(l *Library) {
		if r != nil {
			l.resolver = r
		}
	}
}

// WithRegistry sets the registry queried by get_list_of_objects.
func WithRegistry(r *collection.Registry) Option {
	return func(l *Library) {
		if r != nil {
			l.registry = r
		}
	}
}

// WithSettings sets the site settings (created year, language code).
func WithSettings(s settings.Settings) Option {
	return func(l *Library) {
		if s.LanguageCode == "" {
			s.LanguageCode = settings.DefaultLanguageCode
		}
		l.settings = s
	}
}

// WithLogger sets the logger.
// If nil, logging is disabled.
func WithLogger(log *slog.Logger) Option {
	return func(l *Library) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithClock sets the source of "now" for relative dates and copyright.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		if now != nil {
			l.now = now
		}
	}
}
