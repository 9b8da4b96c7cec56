package humanize

import "errors"

var (
	ErrOutOfRange = errors.New("humanize: number out of range for roman numerals")
)
