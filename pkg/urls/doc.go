// Package urls adds named routes and reverse lookup on top of chi.
//
// Templates refer to pages by name rather than by path; the name is resolved
// back into a URL when the page renders:
//
//	routes := urls.New(chi.NewRouter())
//	routes.Get("home", "/", homeHandler)
//	routes.Get("article", "/greinar/{slug}", articleHandler)
//
//	routes.Reverse("article", "sumarfri") // "/greinar/sumarfri", nil
//	routes.Reverse("missing")             // "", ErrNoReverseMatch
package urls
