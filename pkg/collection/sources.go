package collection

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Slice serves a fixed in-memory collection.
func Slice[T any](items ...T) Source {
	return SourceFunc(func(context.Context) ([]any, error) {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out, nil
	})
}

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Query serves the rows of a SQL query, one map per row keyed by column name.
func Query(db Querier, sql string, args ...any) Source {
	return SourceFunc(func(ctx context.Context) ([]any, error) {
		rows, err := db.Query(ctx, sql, args...)
		if err != nil {
			return nil, errors.Join(ErrQuery, err)
		}

		records, err := pgx.CollectRows(rows, pgx.RowToMap)
		if err != nil {
			return nil, errors.Join(ErrQuery, err)
		}

		out := make([]any, len(records))
		for i, rec := range records {
			out[i] = rec
		}
		return out, nil
	})
}
