package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// DefaultLang is the catalog language when none is configured.
const DefaultLang = "is"

// I18n is an immutable translation catalog.
// Safe for concurrent use once New returns.
type I18n struct {
	// Flattened messages keyed by "lang:namespace:dotted.key".
	messages map[string]string

	pluralRules map[string]PluralRule

	// Called when a key is missing from every fallback language.
	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
}

// Option configures the catalog during construction.
type Option func(*I18n) error

// New builds a catalog from the given options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		messages:    make(map[string]string),
		pluralRules: make(map[string]PluralRule),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithTranslations adds messages for a language and namespace.
// Nested maps are flattened into dotted keys.
func WithTranslations(lang, namespace string, messages map[string]any) Option {
	return func(i *I18n) error {
		return i.add(lang, namespace, messages)
	}
}

// WithPluralRule overrides the plural rule of a language.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithMissingKeyHandler registers a callback for keys missing in every fallback.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// T returns the message for key with placeholders replaced.
// Lookup order: exact language, base language, default language, then the key itself.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	for _, l := range i.fallbackChain(lang) {
		if msg, ok := i.messages[buildKey(l, namespace, key)]; ok {
			return ReplacePlaceholders(msg, merge(placeholders))
		}
	}

	i.missing(lang, namespace, key)
	return key
}

// Tn returns the plural form of key selected for n.
// The count is available to the message as {{count}}.
func (i *I18n) Tn(lang, namespace, key string, n int, placeholders ...M) string {
	form := i.pluralRule(lang)(n)

	for _, l := range i.fallbackChain(lang) {
		if msg, ok := i.pluralMessage(l, namespace, key, form); ok {
			values := M{"count": n}
			maps.Copy(values, merge(placeholders))
			return ReplacePlaceholders(msg, values)
		}
	}

	i.missing(lang, namespace, key)
	return key
}

// Has reports whether key exists for lang or one of its fallbacks.
func (i *I18n) Has(lang, namespace, key string) bool {
	for _, l := range i.fallbackChain(lang) {
		if _, ok := i.messages[buildKey(l, namespace, key)]; ok {
			return true
		}
	}
	return false
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func (i *I18n) add(lang, namespace string, messages map[string]any) error {
	if lang == "" {
		return ErrEmptyLanguage
	}
	if namespace == "" {
		return ErrEmptyNamespace
	}

	for key, value := range flatten(messages, "") {
		i.messages[buildKey(lang, namespace, key)] = value
	}

	if _, ok := i.pluralRules[lang]; !ok {
		i.pluralRules[lang] = PluralRuleFor(lang)
	}

	return nil
}

func (i *I18n) pluralRule(lang string) PluralRule {
	for _, l := range i.fallbackChain(lang) {
		if rule, ok := i.pluralRules[l]; ok {
			return rule
		}
	}
	return PluralRuleFor(lang)
}

func (i *I18n) pluralMessage(lang, namespace, key, form string) (string, bool) {
	if msg, ok := i.messages[buildKey(lang, namespace, key+"."+form)]; ok {
		return msg, true
	}
	for _, fallback := range pluralFallback(form) {
		if msg, ok := i.messages[buildKey(lang, namespace, key+"."+fallback)]; ok {
			return msg, true
		}
	}
	return "", false
}

func (i *I18n) fallbackChain(lang string) []string {
	chain := []string{lang}
	if base := baseLanguage(lang); base != lang {
		chain = append(chain, base)
	}
	if lang != i.defaultLang && baseLanguage(lang) != i.defaultLang {
		chain = append(chain, i.defaultLang)
	}
	return chain
}

func (i *I18n) missing(lang, namespace, key string) {
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprint(v)
		}
	}

	return result
}

func merge(placeholders []M) M {
	if len(placeholders) == 1 {
		return placeholders[0]
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}

// baseLanguage strips the region from a tag ("is-IS" -> "is").
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
