package i18n

import "strings"

// PluralRule picks the CLDR plural category for a count.
type PluralRule func(n int) string

// Plural categories used by the bundled rules.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralOther = "other"
)

// DefaultPluralRule separates one from everything else.
var DefaultPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// EnglishPluralRule adds an explicit zero category on top of one/other.
var EnglishPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	return DefaultPluralRule(n)
}

// IcelandicPluralRule implements the CLDR rule for Icelandic integers:
// one when the last digit is 1 and the last two digits are not 11.
// 1, 21, 31, 101 are "one"; 11, 111, 20 are "other".
var IcelandicPluralRule PluralRule = func(n int) string {
	if n < 0 {
		n = -n
	}
	if n%10 == 1 && n%100 != 11 {
		return PluralOne
	}
	return PluralOther
}

// PluralRuleFor returns the rule for a language code such as "is" or "en-GB".
func PluralRuleFor(lang string) PluralRule {
	switch strings.ToLower(baseLanguage(lang)) {
	case "is":
		return IcelandicPluralRule
	case "en":
		return EnglishPluralRule
	default:
		return DefaultPluralRule
	}
}

// pluralFallback lists the categories tried when a form is missing from the catalog.
func pluralFallback(form string) []string {
	if form == PluralOther {
		return nil
	}
	return []string{PluralOther}
}
