// Package link builds navigation links that stop being links on their own
// page. A menu entry pointing at the page currently being viewed renders as a
// plain span, every other entry as an anchor.
//
//	l, err := link.Resolve(routes, r.URL.Path, "Fréttir", "news")
//	link.Component(l).Render(ctx, w)
//	// <a href="/frettir/">Fréttir</a>  or  <span class="current">Fréttir</span>
package link
