package humanize

import (
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/templatetools/pkg/i18n"
	"github.com/dmitrymomot/templatetools/pkg/icelandic"
)

// FormatDate spells out t with the weekday declined in case c:
// "mánudagurinn 22. desember 2008" (nf), "mánudeginum 22. desember 2008" (þgf).
func (h *Humanizer) FormatDate(t time.Time, c icelandic.Case) string {
	return h.tr.T("date.long", i18n.M{
		"weekday": icelandic.Weekday(t.Weekday(), c),
		"ending":  icelandic.Ending(c),
		"day":     t.Day(),
		"month":   icelandic.Month(t.Month()),
		"year":    t.Year(),
	})
}

// FormatDateTime is FormatDateTimeAt relative to the configured clock.
func (h *Humanizer) FormatDateTime(t time.Time) string {
	return h.FormatDateTimeAt(t, h.now())
}

// FormatDateTimeAt spells out t with its clock time, prefixed with
// "Í dag", "Í gær" or "Á morgun" when t falls on, before or after the
// calendar day of now:
//
//	"Í gær, þriðjudaginn 21. október 2008, kl. 20:01"
//	"Föstudaginn 24. október 2008, kl. 13:00"
func (h *Humanizer) FormatDateTimeAt(t, now time.Time) string {
	verbose := h.tr.T("datetime.verbose", i18n.M{
		"date": h.FormatDate(t, icelandic.Accusative),
		"time": h.tr.FormatTime(t),
	})

	switch daysBetween(now.In(t.Location()), t) {
	case 0:
		return h.tr.T("datetime.today", i18n.M{"date": verbose})
	case -1:
		return h.tr.T("datetime.yesterday", i18n.M{"date": verbose})
	case 1:
		return h.tr.T("datetime.tomorrow", i18n.M{"date": verbose})
	default:
		return capitalize(verbose)
	}
}

// daysBetween counts calendar days from a to b, ignoring clock time and DST.
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// capitalize upper-cases the first letter using Icelandic casing rules.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Icelandic).String(string(r)) + s[size:]
}
