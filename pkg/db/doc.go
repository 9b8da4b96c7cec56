// Package db opens the PostgreSQL pool behind database-backed collections.
//
//	pool, err := db.Connect(ctx, db.Config{URL: cfg.DatabaseURL})
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	registry.Register("news", "article", collection.DefaultManager,
//		collection.Query(pool, "SELECT title, slug FROM articles ORDER BY published_at DESC"))
//
// Pool limits and retry behaviour can also be read from the environment with
// [ConfigFromEnv].
package db
