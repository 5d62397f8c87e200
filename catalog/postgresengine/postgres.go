package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-coursework/catalog"
	"github.com/AntonStoeckl/library-coursework/catalog/postgresengine/internal/adapters"
)

const (
	logMsgBuildQueryFailed = "failed to build select query"
	logMsgDBQueryFailed    = "database query execution failed"
	logMsgCloseRowsFailed  = "failed to close database rows"
	logMsgScanRowFailed    = "failed to scan database row"
	logMsgListCompleted    = "listing completed"
	logMsgSQLExecuted      = "executed sql for: "
	logAttrError           = "error"
	logAttrQuery           = "query"
	logAttrListing         = "listing"
	logAttrRowCount        = "row_count"
	logAttrDurationMS      = "duration_ms"
	listingBooks           = "books"
	listingReaders         = "readers"
	listingLoans           = "loans"
)

// Store reads catalog listings from PostgreSQL.
type Store struct {
	db     adapters.DBAdapter
	tables TableNames
	logger Logger
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (Store, error) {
	s := Store{
		db:     db,
		tables: DefaultTableNames(),
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}

// ListBooks returns all books ordered by inventory number.
func (s Store) ListBooks(ctx context.Context) ([]catalog.Book, error) {
	return list(ctx, s, listingBooks, s.buildBooksQuery, func(rows adapters.DBRows) (catalog.Book, error) {
		var book catalog.Book
		err := rows.Scan(bookTargets(&book)...)

		return book, err
	})
}

// ListReaders returns all readers ordered by ticket number.
func (s Store) ListReaders(ctx context.Context) ([]catalog.Reader, error) {
	return list(ctx, s, listingReaders, s.buildReadersQuery, func(rows adapters.DBRows) (catalog.Reader, error) {
		var reader catalog.Reader
		err := rows.Scan(readerTargets(&reader)...)

		return reader, err
	})
}

// ListLoans returns all loans ordered by loan id, each with its reader and book resolved.
func (s Store) ListLoans(ctx context.Context) ([]catalog.Loan, error) {
	return list(ctx, s, listingLoans, s.buildLoansQuery, func(rows adapters.DBRows) (catalog.Loan, error) {
		var loan catalog.Loan

		targets := []any{&loan.ID, &loan.LoanDate}
		targets = append(targets, readerTargets(&loan.Reader)...)
		targets = append(targets, bookTargets(&loan.Book)...)
		err := rows.Scan(targets...)

		return loan, err
	})
}

// Snapshot returns all three listings.
func (s Store) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	books, err := s.ListBooks(ctx)
	if err != nil {
		return catalog.Snapshot{}, err
	}

	readers, err := s.ListReaders(ctx)
	if err != nil {
		return catalog.Snapshot{}, err
	}

	loans, err := s.ListLoans(ctx)
	if err != nil {
		return catalog.Snapshot{}, err
	}

	return catalog.Snapshot{Books: books, Readers: readers, Loans: loans}, nil
}

func bookTargets(book *catalog.Book) []any {
	return []any{
		&book.InventoryNumber, &book.Author, &book.Title, &book.Section, &book.PublicationYear,
		&book.PagesCount, &book.Price, &book.Type, &book.CopiesCount, &book.MaxLoanDays,
	}
}

func readerTargets(reader *catalog.Reader) []any {
	return []any{
		&reader.TicketNumber, &reader.LastName, &reader.FirstName, &reader.Phone,
		&reader.Address, &reader.Course, &reader.GroupName,
	}
}

// list builds and runs one listing query and scans every row with scanRow.
func list[T any](
	ctx context.Context,
	s Store,
	listing string,
	buildQuery func() (string, error),
	scanRow func(rows adapters.DBRows) (T, error),
) ([]T, error) {

	sqlQuery, buildErr := buildQuery()
	if buildErr != nil {
		s.logError(logMsgBuildQueryFailed, logAttrListing, listing, logAttrError, buildErr.Error())
		return nil, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
	}

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, listing, duration)

	if queryErr != nil {
		s.logError(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return nil, errors.Join(catalog.ErrQueryingFailed, queryErr)
	}
	defer s.closeRows(rows)

	result := make([]T, 0)
	for rows.Next() {
		item, scanErr := scanRow(rows)
		if scanErr != nil {
			s.logError(logMsgScanRowFailed, logAttrListing, listing, logAttrError, scanErr.Error())
			return nil, errors.Join(catalog.ErrScanningRowFailed, scanErr)
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		s.logError(logMsgDBQueryFailed, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		return nil, errors.Join(catalog.ErrQueryingFailed, err)
	}

	if s.logger != nil {
		s.logger.Info(logMsgListCompleted, logAttrListing, listing, logAttrRowCount, len(result))
	}

	return result, nil
}

// closeRows safely closes database rows and logs any errors.
func (s Store) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level.
func (s Store) logQueryWithDuration(sqlQuery, listing string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(
			logMsgSQLExecuted+listing,
			logAttrQuery, sqlQuery,
			logAttrDurationMS, float64(duration.Nanoseconds())/1e6,
		)
	}
}

func (s Store) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}
