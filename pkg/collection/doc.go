// Package collection binds model collections into template data.
//
// Applications register the collections they expose under an app name, a
// model name and a manager name. A directive then names one of them and the
// variable that receives it:
//
//	reg := collection.NewRegistry()
//	reg.Register("news", "Article", "published", collection.Query(pool,
//		"SELECT id, title FROM articles WHERE published ORDER BY created_at DESC"))
//
//	node, err := reg.Parse("get_list_of_objects news Article published as articles")
//	node.Render(ctx, data) // data["articles"] = []any{...}
//
// The manager is optional and defaults to "objects". Parse checks that the
// app and model exist; the manager is looked up when the node renders.
package collection
