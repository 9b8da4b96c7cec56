package templatetools

import "errors"

// ErrInvalidArgument is returned by a template function called with a value
// it cannot format.
var ErrInvalidArgument = errors.New("templatetools: invalid argument")
