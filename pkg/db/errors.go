package db

import "errors"

var (
	ErrNoURL       = errors.New("db: no database URL configured")
	ErrParseConfig = errors.New("db: failed to parse database configuration")
	ErrConnect     = errors.New("db: failed to open database connection")
)
