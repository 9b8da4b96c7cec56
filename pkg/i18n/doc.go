// Package i18n is the message catalog behind the Icelandic template helpers.
//
// A catalog is built once with functional options and is immutable afterwards,
// so a single instance can be shared by every request. Messages are addressed
// by language, namespace and a dotted key; nested maps are flattened on load.
//
//	cat, err := i18n.New(
//		i18n.WithDefaultLanguage("is"),
//		i18n.WithYAMLDir(localesFS), // is/templatetools.yaml
//	)
//
//	cat.T("is", "templatetools", "comments.none")
//	// "Engin athugasemd"
//
// # Plural forms
//
// Tn picks a CLDR category with the language's plural rule and reads
// key.<category>. Icelandic treats counts ending in 1 (but not 11) as singular:
//
//	age:
//	  years:
//	    one: "{{count}} árs"
//	    other: "{{count}} ára"
//
//	cat.Tn("is", "templatetools", "age.years", 21) // "21 árs"
//	cat.Tn("is", "templatetools", "age.years", 11) // "11 ára"
//
// # Fallback
//
// A missing key is looked up in the base language ("is" for "is-IS"), then in
// the default language, and finally the key itself is returned.
//
// # Translator
//
// Translator fixes language, namespace and LocaleFormat so that formatting code
// only deals with keys:
//
//	tr := i18n.NewTranslator(cat, "is", "templatetools", i18n.FormatIsIS())
//	tr.FormatTime(t) // "20:01"
package i18n
