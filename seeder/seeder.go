package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"

	"github.com/AntonStoeckl/library-coursework/shell"
)

const (
	sectionWidth = 80

	logMsgRunStarted      = "seeding run started"
	logMsgRunFinished     = "seeding run finished"
	logMsgSchemaFailed    = "creating tables failed"
	logMsgClearFailed     = "clearing tables failed"
	logMsgPopulateFailed  = "generating test data failed"
	logMsgRollbackFailed  = "rollback failed"
	logMsgReportFailed    = "report query failed"
	logMsgDumpFailed      = "table dump failed"
	logMsgStatement       = "executed sql"
	logAttrRunID          = "run_id"
	logAttrError          = "error"
	logAttrQuery          = "query"
	logAttrReport         = "report"
	logAttrTable          = "table"
	logAttrDurationMS     = "duration_ms"
	textNoResults         = "[No results]"
	textQueryFailedPrefix = "[Query failed]"
)

var (
	// ErrNilDatabaseConnection is returned when the seeder is created without a database handle.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrSchemaFailed is returned when the tables cannot be created.
	ErrSchemaFailed = errors.New("creating tables failed")

	// ErrClearFailed is returned when the tables cannot be truncated.
	ErrClearFailed = errors.New("clearing tables failed")

	// ErrPopulateFailed is returned when inserting the synthetic data fails.
	ErrPopulateFailed = errors.New("generating test data failed")

	// ErrQueryFailed is returned when a dump or report query fails.
	ErrQueryFailed = errors.New("query failed")
)

// Counts holds the number of rows one run inserts.
type Counts struct {
	Books   int
	Readers int
	Loans   int
}

// Seeder recreates the library data on one database connection.
type Seeder struct {
	db        *sqlx.DB
	generator Generator
	counts    Counts
	palette   shell.Palette
	logger    shell.Logger
	runID     uuid.UUID
}

// Option defines a functional option for configuring Seeder.
type Option func(*Seeder)

// WithGenerator replaces the default gofakeit-backed generator.
func WithGenerator(generator Generator) Option {
	return func(s *Seeder) {
		s.generator = generator
	}
}

// WithCounts overrides how many rows are inserted.
func WithCounts(counts Counts) Option {
	return func(s *Seeder) {
		s.counts = counts
	}
}

// WithPalette sets the console colors.
func WithPalette(palette shell.Palette) Option {
	return func(s *Seeder) {
		s.palette = palette
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger shell.Logger) Option {
	return func(s *Seeder) {
		s.logger = logger
	}
}

// New creates a Seeder on db, which should be limited to a single open connection.
func New(db *sqlx.DB, options ...Option) (*Seeder, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	runID, err := uuid.NewV7()
	if err != nil {
		runID = uuid.New()
	}

	s := &Seeder{
		db:        db,
		generator: NewGenerator(gofakeit.New(0), time.Now),
		counts:    Counts{Books: DefaultBookCount, Readers: DefaultReaderCount, Loans: DefaultLoanCount},
		palette:   shell.NewPalette(false),
		runID:     runID,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

// RunID identifies this seeder's run in the logs.
func (s *Seeder) RunID() uuid.UUID {
	return s.runID
}

// Run creates the schema, replaces all data, prints every table and runs the reports.
// Step failures are reported on w and do not stop the run.
func (s *Seeder) Run(ctx context.Context, w io.Writer) {
	s.logInfo(logMsgRunStarted)

	if err := s.EnsureSchema(ctx); err != nil {
		s.println(w, s.palette.Error("✗ "+err.Error()))
	} else {
		s.println(w, s.palette.Success("✓ Tables created or already exist"))
	}

	if err := s.Clear(ctx); err != nil {
		s.println(w, s.palette.Warning(fmt.Sprintf("Note: tables are empty or not created yet (%v)", err)))
	} else {
		s.println(w, s.palette.Success("✓ Old data cleared"))
	}

	if err := s.Populate(ctx); err != nil {
		s.println(w, s.palette.Error("✗ "+err.Error()))
	} else {
		s.println(w, s.palette.Success(fmt.Sprintf(
			"✓ Test data generated (%d books, %d readers, %d loans)",
			s.counts.Books, s.counts.Readers, s.counts.Loans,
		)))
	}

	_ = s.ShowTables(ctx, w) // failures are printed per table

	s.RunReports(ctx, w)

	s.println(w, "\nDone.")
	s.logInfo(logMsgRunFinished)
}

// EnsureSchema creates the three tables if they do not exist, in one transaction.
func (s *Seeder) EnsureSchema(ctx context.Context) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, statement := range schemaStatements() {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		s.logError(logMsgSchemaFailed, logAttrError, err.Error())
		return errors.Join(ErrSchemaFailed, err)
	}

	return nil
}

// Clear removes all rows and resets the id sequences.
func (s *Seeder) Clear(ctx context.Context) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, execErr := tx.ExecContext(ctx, truncateTables)
		return execErr
	})

	if err != nil {
		s.logWarn(logMsgClearFailed, logAttrError, err.Error())
		return errors.Join(ErrClearFailed, err)
	}

	return nil
}

// Populate inserts books and readers, reads back their ids and inserts loans referencing them.
// Everything happens in one transaction.
func (s *Seeder) Populate(ctx context.Context) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, namedInsert(TableBooks, BookRow{}), s.generator.Books(s.counts.Books)); err != nil {
			return err
		}

		if _, err := tx.NamedExecContext(ctx, namedInsert(TableReaders, ReaderRow{}), s.generator.Readers(s.counts.Readers)); err != nil {
			return err
		}

		bookIDs, err := selectIDs(ctx, tx, TableBooks, pkBooks)
		if err != nil {
			return err
		}

		readerIDs, err := selectIDs(ctx, tx, TableReaders, pkReaders)
		if err != nil {
			return err
		}

		loans, err := s.generator.Loans(s.counts.Loans, readerIDs, bookIDs)
		if err != nil {
			return err
		}

		_, err = tx.NamedExecContext(ctx, namedInsert(TableLoans, LoanRow{}), loans)

		return err
	})

	if err != nil {
		s.logError(logMsgPopulateFailed, logAttrError, err.Error())
		return errors.Join(ErrPopulateFailed, err)
	}

	return nil
}

// ShowTables prints the content of every table in grid style.
// A failing dump is printed and skipped; the returned error joins all failures.
func (s *Seeder) ShowTables(ctx context.Context, w io.Writer) error {
	s.printSection(w, "DATABASE TABLES")

	var failures []error

	for _, tbl := range []struct{ name, pk string }{
		{TableBooks, pkBooks},
		{TableReaders, pkReaders},
		{TableLoans, pkLoans},
	} {
		s.println(w, "\n"+s.palette.Bold("Table: "+tbl.name))

		if err := s.dumpTable(ctx, w, tbl.name, tbl.pk); err != nil {
			s.logError(logMsgDumpFailed, logAttrTable, tbl.name, logAttrError, err.Error())
			s.println(w, s.palette.Red(fmt.Sprintf("   %s: %v", textQueryFailedPrefix, err)))
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return errors.Join(append([]error{ErrQueryFailed}, failures...)...)
	}

	return nil
}

func (s *Seeder) dumpTable(ctx context.Context, w io.Writer, table, primaryKey string) error {
	sqlQuery, err := tableDumpQuery(table, primaryKey)
	if err != nil {
		return err
	}

	tab, err := s.queryTabular(ctx, s.db, sqlQuery)
	if err != nil {
		return err
	}

	return RenderTable(w, tab, true)
}

// RunReports runs every report in its own transaction. A failing report is printed, rolled back
// and skipped.
func (s *Seeder) RunReports(ctx context.Context, w io.Writer) {
	s.printSection(w, "REPORTS")

	for _, report := range Reports() {
		s.println(w, "\n"+s.palette.Info("» "+report.Description))

		var tab Tabular
		err := s.inTx(ctx, func(tx *sqlx.Tx) error {
			sqlQuery, buildErr := report.SQL()
			if buildErr != nil {
				return buildErr
			}

			var queryErr error
			tab, queryErr = s.queryTabular(ctx, tx, sqlQuery)

			return queryErr
		})

		if err != nil {
			s.logError(logMsgReportFailed, logAttrReport, report.Description, logAttrError, err.Error())
			s.println(w, s.palette.Red(fmt.Sprintf("   %s: %v", textQueryFailedPrefix, err)))

			continue
		}

		if len(tab.Rows) == 0 {
			s.println(w, "   "+textNoResults)
			continue
		}

		if err = RenderTable(w, tab, false); err != nil {
			s.logError(logMsgReportFailed, logAttrReport, report.Description, logAttrError, err.Error())
		}
	}
}

type queryer interface {
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
}

func (s *Seeder) queryTabular(ctx context.Context, q queryer, sqlQuery string) (Tabular, error) {
	start := time.Now()
	rows, err := q.QueryxContext(ctx, sqlQuery)
	s.logDebug(logMsgStatement, logAttrQuery, sqlQuery, logAttrDurationMS, time.Since(start).Milliseconds())

	if err != nil {
		return Tabular{}, err
	}
	defer func() {
		_ = rows.Close() // errors surface through rows.Err
	}()

	columns, err := rows.Columns()
	if err != nil {
		return Tabular{}, err
	}

	tab := Tabular{Columns: columns}
	for rows.Next() {
		values, scanErr := rows.SliceScan()
		if scanErr != nil {
			return Tabular{}, scanErr
		}

		tab.Rows = append(tab.Rows, values)
	}

	return tab, rows.Err()
}

// inTx runs fn in a transaction, committing on success and rolling back otherwise.
func (s *Seeder) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err = fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			s.logWarn(logMsgRollbackFailed, logAttrError, rollbackErr.Error())
		}

		return err
	}

	return tx.Commit()
}

func selectIDs(ctx context.Context, tx *sqlx.Tx, table, primaryKey string) ([]int64, error) {
	sqlQuery, err := idsQuery(table, primaryKey)
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err = tx.SelectContext(ctx, &ids, sqlQuery); err != nil {
		return nil, err
	}

	return ids, nil
}

func (s *Seeder) printSection(w io.Writer, title string) {
	separator := s.palette.Separator("=", sectionWidth)
	s.println(w, "\n"+separator+"\n"+s.palette.Header(title)+"\n"+separator)
}

func (s *Seeder) println(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line) // console output, nothing sensible to do on failure
}

func (s *Seeder) logDebug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, append(args, logAttrRunID, s.runID.String())...)
	}
}

func (s *Seeder) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, append(args, logAttrRunID, s.runID.String())...)
	}
}

func (s *Seeder) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, append(args, logAttrRunID, s.runID.String())...)
	}
}

func (s *Seeder) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, append(args, logAttrRunID, s.runID.String())...)
	}
}

// namedInsert builds "INSERT INTO table (a, b) VALUES (:a, :b)" from the db tags of row.
func namedInsert(table string, row any) string {
	columns := dbColumns(row)
	placeholders := make([]string, 0, len(columns))
	for _, column := range columns {
		placeholders = append(placeholders, ":"+column)
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
	)
}

var columnMapper = reflectx.NewMapper("db")

// dbColumns lists the db tag names of row's fields in declaration order.
func dbColumns(row any) []string {
	fields := columnMapper.TypeMap(reflect.TypeOf(row)).Tree.Children

	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != nil {
			columns = append(columns, field.Name)
		}
	}

	return columns
}
