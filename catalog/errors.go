package catalog

import "errors"

var (
	// ErrNilDatabaseConnection is returned when a store is created without a database handle.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when a table name option is empty.
	ErrEmptyTableName = errors.New("empty table name supplied")

	// ErrBuildingQueryFailed is returned when a SQL query cannot be built.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingFailed is returned when a catalog query fails in the database.
	ErrQueryingFailed = errors.New("querying catalog failed")

	// ErrScanningRowFailed is returned when a result row cannot be scanned.
	ErrScanningRowFailed = errors.New("scanning db row failed")
)
