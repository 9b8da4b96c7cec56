package db

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds PostgreSQL pool settings.
type Config struct {
	URL string `env:"DATABASE_URL"`

	MaxConns        int32         `env:"DATABASE_MAX_CONNS" envDefault:"4"`
	MinConns        int32         `env:"DATABASE_MIN_CONNS" envDefault:"0"`
	MaxConnIdleTime time.Duration `env:"DATABASE_MAX_CONN_IDLE_TIME" envDefault:"10m"`

	// Connection attempts at startup; the wait grows linearly with each try.
	RetryAttempts int           `env:"DATABASE_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"DATABASE_RETRY_INTERVAL" envDefault:"2s"`
}

// ConfigFromEnv reads Config from environ, or from the process environment
// when environ is nil.
func ConfigFromEnv(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}
	return cfg, nil
}
