package humanize

import (
	"strconv"
	"unicode/utf8"

	"github.com/dmitrymomot/templatetools/pkg/i18n"
)

// Comments describes a comment count: "Engin athugasemd", "Ein athugasemd",
// "5 athugasemdir". Negative counts render as "".
func (h *Humanizer) Comments(n int) string {
	switch {
	case n < 0:
		return ""
	case n == 0:
		return h.tr.T("comments.none")
	case n == 1:
		return h.tr.T("comments.one")
	default:
		return h.tr.T("comments.many", i18n.M{"count": n})
	}
}

// FormatPhone groups a seven-digit Icelandic number as "568-8223".
// Other lengths and other languages are returned unchanged.
func FormatPhone(number, lang string) string {
	if lang != "is" || utf8.RuneCountInString(number) != 7 {
		return number
	}
	r := []rune(number)
	return string(r[:3]) + "-" + string(r[3:])
}

// Copyright renders the year span of a site created in createdYear.
// A zero createdYear means the site has no creation year configured and only
// the current year is shown.
func (h *Humanizer) Copyright(createdYear int) string {
	current := h.now().Year()
	if createdYear == 0 || createdYear == current {
		return strconv.Itoa(current)
	}
	return h.tr.T("copyright.range", i18n.M{"from": createdYear, "to": current})
}
