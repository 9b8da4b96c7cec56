// Package humanize turns dates, ages, counts, phone numbers and loop positions
// into the Icelandic prose shown on site pages.
//
// Every phrase is read from an i18n catalog. The package embeds the Icelandic
// catalog under the "templatetools" namespace and uses it unless a Translator
// is supplied:
//
//	h, err := humanize.New()
//	h.FormatDate(t, icelandic.Dative)          // "mánudeginum 22. desember 2008"
//	h.FormatAge(humanize.Age{Years: 21, Days: 2}) // "21 árs og 2 daga"
//	h.Comments(0)                               // "Engin athugasemd"
//
// Romanize and PositionClass are language-neutral and exposed as plain
// functions.
package humanize
