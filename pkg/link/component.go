package link

import (
	"context"
	"io"
	"sync"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

var (
	titlePolicy     *bluemonday.Policy
	titlePolicyOnce sync.Once
)

// plainTitle strips all markup from a title. The result is HTML-escaped text.
func plainTitle(s string) string {
	titlePolicyOnce.Do(func() {
		titlePolicy = bluemonday.StrictPolicy()
	})
	return titlePolicy.Sanitize(s)
}

// Component renders l as an anchor, as a span with class "current" when it
// points at the current page, or as nothing for the zero Link.
func Component(l Link) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if l.IsZero() {
			return nil
		}

		title := plainTitle(l.Title)
		if !l.IsHref {
			_, err := io.WriteString(w, `<span class="current">`+title+`</span>`)
			return err
		}

		href := templ.EscapeString(string(templ.URL(l.Href)))
		_, err := io.WriteString(w, `<a href="`+href+`">`+title+`</a>`)
		return err
	})
}
