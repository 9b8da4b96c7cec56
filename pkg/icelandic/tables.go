package icelandic

import "time"

// Every weekday is a compound of "dagur" and declines like it.
var weekdayPrefixes = [...]string{
	time.Sunday:    "sunnu",
	time.Monday:    "mánu",
	time.Tuesday:   "þriðju",
	time.Wednesday: "miðviku",
	time.Thursday:  "fimmtu",
	time.Friday:    "föstu",
	time.Saturday:  "laugar",
}

var dagur = [...]string{
	Nominative: "dagur",
	Accusative: "dag",
	Dative:     "degi",
	Genitive:   "dags",
}

var endings = [...]string{
	Nominative: "inn",
	Accusative: "inn",
	Dative:     "num",
	Genitive:   "ins",
}

var months = [...]string{
	time.January:   "janúar",
	time.February:  "febrúar",
	time.March:     "mars",
	time.April:     "apríl",
	time.May:       "maí",
	time.June:      "júní",
	time.July:      "júlí",
	time.August:    "ágúst",
	time.September: "september",
	time.October:   "október",
	time.November:  "nóvember",
	time.December:  "desember",
}

// Weekday returns the indefinite weekday name in case c, e.g. "mánudag" for
// Monday in the accusative. Out-of-range input yields "".
func Weekday(d time.Weekday, c Case) string {
	if d < time.Sunday || d > time.Saturday || !c.Valid() {
		return ""
	}
	return weekdayPrefixes[d] + dagur[c]
}

// Ending returns the suffixed definite article for case c.
func Ending(c Case) string {
	if !c.Valid() {
		return ""
	}
	return endings[c]
}

// Month returns the lower-case month name.
func Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return months[m]
}
