package link

import (
	"fmt"

	"github.com/dmitrymomot/templatetools/pkg/urls"
)

// Link holds the attributes of a conditional navigation link.
type Link struct {
	Title  string
	Href   string
	IsHref bool
}

// IsZero reports whether l is the empty link produced by a failed lookup.
func (l Link) IsZero() bool {
	return l == Link{}
}

// Resolve reverses the route name and compares it with currentPath. The link
// is an anchor unless both are equal.
func Resolve(resolver urls.Resolver, currentPath, title, name string, params ...string) (Link, error) {
	if resolver == nil {
		return Link{}, fmt.Errorf("%w: no resolver configured", urls.ErrNoReverseMatch)
	}

	href, err := resolver.Reverse(name, params...)
	if err != nil {
		return Link{}, err
	}

	return Link{
		Title:  title,
		Href:   href,
		IsHref: currentPath != href,
	}, nil
}
