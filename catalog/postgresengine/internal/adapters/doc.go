// Package adapters lets the catalog store read from pgx.Pool, sql.DB and sqlx.DB alike.
//
// Each adapter wraps its library's query call and returns rows behind the common DBRows interface,
// so the store's scanning code is written once.
package adapters
