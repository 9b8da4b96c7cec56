package humanize

import "github.com/dmitrymomot/templatetools/pkg/i18n"

// Age is a (years, months, days) triplet.
type Age struct {
	Years  int
	Months int
	Days   int
}

// FormatAge renders an age in the genitive used after "á aldrinum":
// "20 ára", "21 árs og 2 daga", "20 ára, 3 mánaða og 1 dags".
// Months and days are omitted when zero; years are always present.
func (h *Humanizer) FormatAge(a Age) string {
	years := h.tr.Tn("age.years", a.Years)

	var months, days string
	if a.Months != 0 {
		months = h.tr.T("age.months", i18n.M{"months": a.Months})
	}
	if a.Days != 0 {
		key := "age.days"
		if a.Days == 1 {
			key = "age.day"
		}
		days = h.tr.T(key, i18n.M{"days": a.Days})
	}

	parts := i18n.M{"years": years, "months": months, "days": days}
	switch {
	case months != "" && days != "":
		return h.tr.T("age.full", parts)
	case days != "":
		return h.tr.T("age.years_days", parts)
	case months != "":
		return h.tr.T("age.years_months", parts)
	default:
		return years
	}
}
