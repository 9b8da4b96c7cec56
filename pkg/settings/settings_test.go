package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/templatetools/pkg/settings"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		s, err := settings.Parse(nil, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, 0, s.CreatedYear)
		assert.Equal(t, "is", s.LanguageCode)
		assert.Equal(t, ":8080", s.Addr)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		s, err := settings.Parse([]byte("site_name: Sniðmát\ncreated_year: 2008\n"), map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, "Sniðmát", s.SiteName)
		assert.Equal(t, 2008, s.CreatedYear)
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Parallel()
		s, err := settings.Parse([]byte("created_year: 2008\n"), map[string]string{
			"CREATED_YEAR":  "2010",
			"LANGUAGE_CODE": "en",
		})
		require.NoError(t, err)
		assert.Equal(t, 2010, s.CreatedYear)
		assert.Equal(t, "en", s.LanguageCode)
	})

	t.Run("bad yaml", func(t *testing.T) {
		t.Parallel()
		_, err := settings.Parse([]byte("created_year: [\n"), map[string]string{})
		require.ErrorIs(t, err, settings.ErrParseFile)
	})

	t.Run("bad environment", func(t *testing.T) {
		t.Parallel()
		_, err := settings.Parse(nil, map[string]string{"CREATED_YEAR": "MMVIII"})
		require.ErrorIs(t, err, settings.ErrParseEnv)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		s, err := settings.Load(filepath.Join(dir, "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "is", s.LanguageCode)
	})

	t.Run("existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "site.yaml")
		require.NoError(t, os.WriteFile(path, []byte("site_name: Vefur\n"), 0o600))
		s, err := settings.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Vefur", s.SiteName)
	})
}
