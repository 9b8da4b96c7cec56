package i18n

import "time"

// Translator binds a catalog to one language, namespace and locale format.
type Translator struct {
	i18n      *I18n
	format    *LocaleFormat
	language  string
	namespace string
}

// NewTranslator creates a Translator. An empty language falls back to the
// catalog default; a nil format falls back to FormatIsIS.
func NewTranslator(i18n *I18n, language, namespace string, format *LocaleFormat) *Translator {
	if i18n == nil {
		panic("i18n: catalog is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	if format == nil {
		format = FormatIsIS()
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
		format:    format,
	}
}

// T translates key in the bound language and namespace.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

// Tn translates the plural form of key for n.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.language, t.namespace, key, n, placeholders...)
}

// FormatTime renders the clock part of tm in the bound locale.
func (t *Translator) FormatTime(tm time.Time) string {
	return t.format.FormatTime(tm)
}

// FormatDate renders tm as a numeric date in the bound locale.
func (t *Translator) FormatDate(tm time.Time) string {
	return t.format.FormatDate(tm)
}

// Language returns the bound language.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the bound namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}
