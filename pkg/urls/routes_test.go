package urls_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/templatetools/pkg/urls"
)

func ok(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func newRoutes(t *testing.T) *urls.Routes {
	t.Helper()

	routes := urls.New(chi.NewRouter())
	routes.Get("home", "/", ok("home"))
	routes.Get("article", "/greinar/{slug}", ok("article"))
	routes.Get("archive", "/safn/{year:[0-9]{4}}/{month}", ok("archive"))
	routes.Get("files", "/skrar/*", ok("files"))
	routes.Post("", "/anonymous", ok("anonymous"))
	routes.Route("/frettir", func(r *urls.Routes) {
		r.Get("news", "/", ok("news"))
		r.Get("news-item", "/{id}", ok("news-item"))
	})
	return routes
}

func TestRoutes_Reverse(t *testing.T) {
	t.Parallel()

	routes := newRoutes(t)

	tests := []struct {
		name     string
		route    string
		params   []string
		expected string
	}{
		{"static", "home", nil, "/"},
		{"one param", "article", []string{"sumarfri"}, "/greinar/sumarfri"},
		{"escaped param", "article", []string{"á ferð"}, "/greinar/%C3%A1%20fer%C3%B0"},
		{"regexp param", "archive", []string{"2008", "10"}, "/safn/2008/10"},
		{"wildcard empty", "files", nil, "/skrar/"},
		{"wildcard value", "files", []string{"a/b.pdf"}, "/skrar/a/b.pdf"},
		{"sub router root", "news", nil, "/frettir/"},
		{"sub router param", "news-item", []string{"42"}, "/frettir/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := routes.Reverse(tt.route, tt.params...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRoutes_ReverseErrors(t *testing.T) {
	t.Parallel()

	routes := newRoutes(t)

	_, err := routes.Reverse("nope")
	require.ErrorIs(t, err, urls.ErrNoReverseMatch)

	_, err = routes.Reverse("article")
	require.ErrorIs(t, err, urls.ErrNoReverseMatch)

	_, err = routes.Reverse("home", "extra")
	require.ErrorIs(t, err, urls.ErrNoReverseMatch)
}

func TestRoutes_DuplicateName(t *testing.T) {
	t.Parallel()

	routes := urls.New(chi.NewRouter())
	routes.Get("home", "/", ok("home"))

	require.Panics(t, func() {
		routes.Get("home", "/heim", ok("home"))
	})
}

func TestRoutes_ServeHTTP(t *testing.T) {
	t.Parallel()

	routes := newRoutes(t)

	for path, body := range map[string]string{
		"/":                 "home",
		"/greinar/sumarfri": "article",
		"/safn/2008/10":     "archive",
		"/frettir/42":       "news-item",
	} {
		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, body, rec.Body.String(), path)
	}

	pattern, found := routes.Pattern("news-item")
	require.True(t, found)
	assert.Equal(t, "/frettir/{id}", pattern)
}
