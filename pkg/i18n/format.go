package i18n

import "time"

// LocaleFormat holds the clock and calendar layouts of a locale.
type LocaleFormat struct {
	timeFormat string
	dateFormat string
}

// LocaleFormatOption configures a LocaleFormat.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat returns a 24-hour, day-first format unless overridden.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		timeFormat: "15:04",
		dateFormat: "02.01.2006",
	}
	for _, opt := range opts {
		opt(lf)
	}
	return lf
}

// WithTimeFormat sets the Go time layout used for clock times.
func WithTimeFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeFormat = layout
	}
}

// WithDateFormat sets the Go time layout used for numeric dates.
func WithDateFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormat = layout
	}
}

// FormatIsIS is the Icelandic format: 20:01 and 22.10.2008.
func FormatIsIS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEnUS is the US English format: 8:01 PM and 10/22/2008.
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat(
		WithTimeFormat("3:04 PM"),
		WithDateFormat("01/02/2006"),
	)
}

// FormatTime renders the clock part of t.
func (lf *LocaleFormat) FormatTime(t time.Time) string {
	return t.Format(lf.timeFormat)
}

// FormatDate renders t as a numeric date.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.dateFormat)
}
