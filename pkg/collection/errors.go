package collection

import "errors"

var (
	ErrSyntax    = errors.New("collection: template syntax error")
	ErrNoApp     = errors.New("collection: no such application")
	ErrNoModel   = errors.New("collection: no such model")
	ErrNoManager = errors.New("collection: no such manager")
	ErrQuery     = errors.New("collection: query failed")
	ErrNilScope  = errors.New("collection: nil scope")
)
