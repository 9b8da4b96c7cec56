// Package templatetools provides Icelandic presentation helpers for
// html/template.
//
// Create a Library with its collaborators and register its functions:
//
//	lib, err := templatetools.New(
//	    templatetools.WithResolver(routes),
//	    templatetools.WithRegistry(registry),
//	    templatetools.WithSettings(cfg),
//	    templatetools.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	tmpl := template.Must(template.New("page").Funcs(lib.Funcs()).ParseFS(views, "*.html"))
//
// # Functions
//
// Values piped into a function arrive as its last argument:
//
//	{{ .Published | format_datetime }}          Í gær, þriðjudaginn 21. október 2008, kl. 20:01
//	{{ .Date | format_date "þgf" }}             mánudeginum 22. desember 2008
//	{{ age 21 0 2 | format_age }}               21 árs og 2 daga
//	{{ .Phone | format_phone }}                 568-8223
//	{{ .Deadline | relative_date "Skil" | format_time_to_date }}
//	{{ .Comments | readable_nr_of_comments }}   Ein athugasemd
//	{{ copyright }}                             2001 - 2008
//	{{ conditional_href .Request "Fréttir" "news" }}
//	{{ $items := get_list_of_objects "news" "article" }}
//	{{ .Number | romanize }}                    XIV
//	{{ forloop $i (len $items) | get_position_class }}
//
// # Directives
//
// Bind evaluates collection directives into template data before rendering:
//
//	data := map[string]any{}
//	err := lib.Bind(ctx, data, "get_list_of_objects news article published as articles")
//
// Directive parse errors wrap [collection.ErrSyntax].
package templatetools
