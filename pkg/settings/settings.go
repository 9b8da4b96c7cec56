// Package settings loads site-wide settings read by the template helpers.
//
// Values come from an optional YAML file and are then overridden by
// environment variables:
//
//	# site.yaml
//	site_name: Sniðmát
//	created_year: 2008
//
//	CREATED_YEAR=2010 ./site   # wins over the file
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var (
	ErrParseFile = errors.New("settings: failed to parse settings file")
	ErrParseEnv  = errors.New("settings: failed to parse environment")
)

// DefaultLanguageCode is used when no language is configured.
const DefaultLanguageCode = "is"

// Settings holds site configuration.
type Settings struct {
	SiteName string `yaml:"site_name" env:"SITE_NAME"`

	// Year the site went live. Zero means unset; the copyright line then
	// shows only the current year.
	CreatedYear int `yaml:"created_year" env:"CREATED_YEAR"`

	LanguageCode string `yaml:"language_code" env:"LANGUAGE_CODE"`

	// Listen address of the example server.
	Addr string `yaml:"addr" env:"HTTP_ADDR"`

	// Optional PostgreSQL URL backing database collections.
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`

	SentryDSN string `yaml:"sentry_dsn" env:"SENTRY_DSN"`
}

// Load reads the YAML file at path, if it exists, and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("settings: reading %q: %w", path, err)
	}
	return Parse(data, nil)
}

// Parse decodes YAML data and applies overrides from environ. A nil environ
// means the process environment.
func Parse(data []byte, environ map[string]string) (Settings, error) {
	var s Settings
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, errors.Join(ErrParseFile, err)
		}
	}

	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return Settings{}, errors.Join(ErrParseEnv, err)
	}

	if s.LanguageCode == "" {
		s.LanguageCode = DefaultLanguageCode
	}
	if s.Addr == "" {
		s.Addr = ":8080"
	}

	return s, nil
}
