package humanize

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/dmitrymomot/templatetools/pkg/i18n"
)

// Namespace is the catalog namespace holding every humanize phrase.
const Namespace = "templatetools"

// Language is the language of the embedded catalog.
const Language = "is"

//go:embed locales
var locales embed.FS

// Catalog loads the embedded Icelandic catalog. Extra options are applied
// after the embedded files so callers can add languages or override phrases.
func Catalog(opts ...i18n.Option) (*i18n.I18n, error) {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, fmt.Errorf("humanize: embedded locales: %w", err)
	}
	return i18n.New(append([]i18n.Option{
		i18n.WithDefaultLanguage(Language),
		i18n.WithYAMLDir(sub),
	}, opts...)...)
}

// Humanizer formats values with a bound translator and clock.
type Humanizer struct {
	tr  *i18n.Translator
	now func() time.Time
}

// Option configures a Humanizer.
type Option func(*Humanizer)

// WithTranslator replaces the embedded catalog.
func WithTranslator(tr *i18n.Translator) Option {
	return func(h *Humanizer) {
		if tr != nil {
			h.tr = tr
		}
	}
}

// WithClock sets the source of the current time. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *Humanizer) {
		if now != nil {
			h.now = now
		}
	}
}

// New creates a Humanizer backed by the embedded catalog.
func New(opts ...Option) (*Humanizer, error) {
	h := &Humanizer{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}

	if h.tr == nil {
		cat, err := Catalog()
		if err != nil {
			return nil, err
		}
		h.tr = i18n.NewTranslator(cat, Language, Namespace, i18n.FormatIsIS())
	}

	return h, nil
}

// Now returns the current time of the configured clock.
func (h *Humanizer) Now() time.Time {
	return h.now()
}
