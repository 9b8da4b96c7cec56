package humanize

import (
	"time"

	"github.com/dmitrymomot/templatetools/pkg/i18n"
)

// RelativeDate is the distance to a date in whole months and days, with a
// prefix that names the event ("Umsóknarfrestur rennur út").
type RelativeDate struct {
	Passed bool
	Months int
	Days   int
	Prefix string
}

// NewRelativeDate measures the calendar distance between now and target.
// Days are counted after the largest whole number of months.
func NewRelativeDate(now, target time.Time, prefix string) RelativeDate {
	from, to := midnight(now), midnight(target.In(now.Location()))
	passed := to.Before(from)
	if passed {
		from, to = to, from
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	anchor := addMonths(from, months)
	for months > 0 && anchor.After(to) {
		months--
		anchor = addMonths(from, months)
	}

	return RelativeDate{
		Passed: passed,
		Months: months,
		Days:   daysBetween(anchor, to),
		Prefix: prefix,
	}
}

// addMonths moves t by n months, clamping the day to the end of the target
// month so that 31 January plus one month is 28 or 29 February.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(d, last)-1)
}

// FormatRelativeDate renders r as "<prefix> <phrase>":
//
//	{false, 0, 1, "Skil"}  -> "Skil á morgun"
//	{true, 2, 21, "Skil"}  -> "Skil fyrir 2 mánuðum og 21 degi"
//	{_, 0, 0, "Skil"}      -> "Skil í dag"
func (h *Humanizer) FormatRelativeDate(r RelativeDate) string {
	if r.Months == 0 && r.Days == 0 {
		return h.tr.T("relative.today", i18n.M{"prefix": r.Prefix})
	}

	values := i18n.M{"months": r.Months, "days": r.Days}
	var info string
	if r.Passed {
		info = h.tr.T("relative.past."+pastKey(r.Months, r.Days), values)
	} else {
		info = h.tr.T("relative.future."+futureKey(r.Months, r.Days), values)
	}

	return h.tr.T("relative.phrase", i18n.M{"prefix": r.Prefix, "info": info})
}

func futureKey(months, days int) string {
	switch months {
	case 0:
		if days == 1 {
			return "tomorrow"
		}
		return "days"
	case 1:
		switch days {
		case 0:
			return "month"
		case 1:
			return "month_one_day"
		default:
			return "month_days"
		}
	default:
		switch {
		case days == 0:
			return "months"
		case days == 1:
			return "months_one_day"
		case singularDays(days):
			return "months_day"
		default:
			return "months_days"
		}
	}
}

func pastKey(months, days int) string {
	switch months {
	case 0:
		switch {
		case days == 1:
			return "yesterday"
		case singularDays(days):
			return "day"
		default:
			return "days"
		}
	case 1:
		switch {
		case days == 0:
			return "month"
		case days == 1:
			return "month_one_day"
		case singularDays(days):
			return "month_day"
		default:
			return "month_days"
		}
	default:
		switch {
		case days == 0:
			return "months"
		case days == 1:
			return "months_one_day"
		case singularDays(days):
			return "months_day"
		default:
			return "months_days"
		}
	}
}

// singularDays reports day counts that take a singular noun: 21 degi, 31 dag.
// Counts never exceed a month, so only these two occur.
func singularDays(days int) bool {
	return days == 21 || days == 31
}
