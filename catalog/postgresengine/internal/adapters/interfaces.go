package adapters

import "context"

// DBAdapter defines the database operations needed by the catalog store.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}
