package urls

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Resolver turns a route name and its parameters back into a path.
type Resolver interface {
	Reverse(name string, params ...string) (string, error)
}

// Routes registers handlers on a chi router under a name.
// Sub-routers created with Route share the name table of their parent.
type Routes struct {
	router chi.Router
	prefix string
	names  *nameTable
}

type nameTable struct {
	mu       sync.RWMutex
	patterns map[string]string
}

// New wraps router.
func New(router chi.Router) *Routes {
	return &Routes{
		router: router,
		names:  &nameTable{patterns: make(map[string]string)},
	}
}

// Get registers a named GET route.
func (r *Routes) Get(name, pattern string, h http.HandlerFunc) {
	r.Handle(name, http.MethodGet, pattern, h)
}

// Post registers a named POST route.
func (r *Routes) Post(name, pattern string, h http.HandlerFunc) {
	r.Handle(name, http.MethodPost, pattern, h)
}

// Handle registers h for method and pattern. An empty name registers an
// anonymous route. Panics if name is already taken, the same way chi panics
// on invalid patterns.
func (r *Routes) Handle(name, method, pattern string, h http.Handler) {
	r.router.Method(method, pattern, h)
	if name == "" {
		return
	}
	if err := r.names.add(name, joinPattern(r.prefix, pattern)); err != nil {
		panic(err)
	}
}

// Route mounts a sub-router at prefix.
func (r *Routes) Route(prefix string, fn func(*Routes)) {
	r.router.Route(prefix, func(sub chi.Router) {
		fn(&Routes{
			router: sub,
			prefix: joinPattern(r.prefix, prefix),
			names:  r.names,
		})
	})
}

// Use appends middleware to the underlying router.
func (r *Routes) Use(mw ...func(http.Handler) http.Handler) {
	r.router.Use(mw...)
}

// ServeHTTP dispatches to the underlying router.
func (r *Routes) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Pattern returns the full pattern registered under name.
func (r *Routes) Pattern(name string) (string, bool) {
	return r.names.get(name)
}

// Reverse builds the path of the named route, filling {param} segments in
// order. A trailing "*" takes one optional extra parameter verbatim.
func (r *Routes) Reverse(name string, params ...string) (string, error) {
	pattern, ok := r.names.get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoReverseMatch, name)
	}
	path, err := fill(pattern, params)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %s", ErrNoReverseMatch, name, err)
	}
	return path, nil
}

func (t *nameTable) add(name, pattern string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.patterns[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	t.patterns[name] = pattern
	return nil
}

func (t *nameTable) get(name string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.patterns[name]
	return p, ok
}

func joinPattern(prefix, pattern string) string {
	if prefix == "" {
		return pattern
	}
	joined := strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(pattern, "/")
	if pattern == "" || pattern == "/" {
		return strings.TrimSuffix(joined, "/") + "/"
	}
	return joined
}
