// Package icelandic holds the declension tables used to spell out dates in
// Icelandic: weekday names in the four grammatical cases, the definite-article
// endings that follow them, and month names.
//
//	icelandic.Weekday(time.Monday, icelandic.Dative) + icelandic.Ending(icelandic.Dative)
//	// "mánudeginum"
package icelandic
