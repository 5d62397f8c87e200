package postgresengine

import "github.com/AntonStoeckl/library-coursework/catalog"

// Logger interface for SQL query logging and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// TableNames names the three catalog tables.
type TableNames struct {
	Books   string
	Readers string
	Loans   string
}

// DefaultTableNames returns the table names the seeder creates.
func DefaultTableNames() TableNames {
	return TableNames{Books: "books", Readers: "readers", Loans: "bookloans"}
}

// Option defines a functional option for configuring Store.
type Option func(*Store) error

// WithTableNames overrides the table names. All three must be set.
func WithTableNames(names TableNames) Option {
	return func(s *Store) error {
		if names.Books == "" || names.Readers == "" || names.Loans == "" {
			return catalog.ErrEmptyTableName
		}

		s.tables = names

		return nil
	}
}

// WithLogger sets the logger for the Store.
//
// Debug level: SQL queries with execution timing
// Info level: row counts per listing
// Warn level: failures to close result rows
// Error level: failed queries and scans.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}
