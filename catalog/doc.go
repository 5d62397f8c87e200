// Package catalog holds the read-model of the library schema: books, readers and the loans between them.
//
// The schema itself is created and filled by the seeder; this package only describes its rows.
// Nullable columns are pointer fields, so a missing value stays distinguishable from a zero value.
package catalog
