// Package postgresengine reads the library catalog from PostgreSQL.
//
// A Store can be built on top of a pgxpool.Pool, a sql.DB or a sqlx.DB; all three behave the same.
// Queries are built with goqu and every listing is ordered by the table's primary key.
//
// Usage:
//
//	store, err := postgresengine.NewStoreFromPGXPool(pool, postgresengine.WithLogger(logger))
//	if err != nil { ... }
//	snapshot, err := store.Snapshot(ctx)
package postgresengine
