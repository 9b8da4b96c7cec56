package link_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/templatetools/pkg/link"
	"github.com/dmitrymomot/templatetools/pkg/urls"
)

func newRoutes() *urls.Routes {
	routes := urls.New(chi.NewRouter())
	noop := func(http.ResponseWriter, *http.Request) {}
	routes.Get("home", "/", noop)
	routes.Get("news", "/frettir", noop)
	routes.Get("article", "/greinar/{slug}", noop)
	return routes
}

func render(t *testing.T, l link.Link) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, link.Component(l).Render(context.Background(), &buf))
	return buf.String()
}

func TestResolve(t *testing.T) {
	t.Parallel()

	routes := newRoutes()

	t.Run("other page is a link", func(t *testing.T) {
		t.Parallel()
		l, err := link.Resolve(routes, "/", "Fréttir", "news")
		require.NoError(t, err)
		assert.Equal(t, link.Link{Title: "Fréttir", Href: "/frettir", IsHref: true}, l)
	})

	t.Run("current page is not a link", func(t *testing.T) {
		t.Parallel()
		l, err := link.Resolve(routes, "/frettir", "Fréttir", "news")
		require.NoError(t, err)
		assert.False(t, l.IsHref)
		assert.Equal(t, "/frettir", l.Href)
	})

	t.Run("route parameters", func(t *testing.T) {
		t.Parallel()
		l, err := link.Resolve(routes, "/", "Sumarfrí", "article", "sumarfri")
		require.NoError(t, err)
		assert.Equal(t, "/greinar/sumarfri", l.Href)
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()
		l, err := link.Resolve(routes, "/", "Týnt", "lost")
		require.ErrorIs(t, err, urls.ErrNoReverseMatch)
		assert.True(t, l.IsZero())
	})

	t.Run("no resolver", func(t *testing.T) {
		t.Parallel()
		_, err := link.Resolve(nil, "/", "Heim", "home")
		require.ErrorIs(t, err, urls.ErrNoReverseMatch)
	})
}

func TestComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		link     link.Link
		expected string
	}{
		{"anchor", link.Link{Title: "Fréttir", Href: "/frettir", IsHref: true}, `<a href="/frettir">Fréttir</a>`},
		{"current", link.Link{Title: "Fréttir", Href: "/frettir"}, `<span class="current">Fréttir</span>`},
		{"zero", link.Link{}, ``},
		{"markup stripped", link.Link{Title: "<b>Heim</b>", Href: "/", IsHref: true}, `<a href="/">Heim</a>`},
		{"text escaped", link.Link{Title: "Saga & menning", Href: "/saga", IsHref: true}, `<a href="/saga">Saga &amp; menning</a>`},
		{"query escaped", link.Link{Title: "Leit", Href: "/leit?q=a&b=c", IsHref: true}, `<a href="/leit?q=a&amp;b=c">Leit</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, render(t, tt.link))
		})
	}
}
