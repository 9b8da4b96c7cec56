package urls

import "errors"

var (
	ErrNoReverseMatch = errors.New("urls: no reverse match")
	ErrDuplicateName  = errors.New("urls: route name already registered")
)
