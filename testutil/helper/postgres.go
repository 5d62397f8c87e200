package helper

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/require"
)

// EnvTestDSN names the variable holding the DSN of a disposable test database.
const EnvTestDSN = "POSTGRES_TEST_DSN"

const connectTimeout = 5 * time.Second

// TestDSN returns the test database DSN, skipping the test when none is configured.
func TestDSN(t testing.TB) string {
	t.Helper()

	dsn := os.Getenv(EnvTestDSN)
	if dsn == "" {
		t.Skipf("%s not set, skipping test that needs PostgreSQL", EnvTestDSN)
	}

	return dsn
}

// SchemaDSN creates an empty schema in the test database and returns a DSN whose search_path points at it.
// The schema is dropped when the test ends. Packages using different schemas can run in parallel.
func SchemaDSN(t testing.TB, schema string) string {
	t.Helper()

	dsn := TestDSN(t)
	admin := connectSQLX(t, dsn)
	quoted := `"` + strings.ReplaceAll(schema, `"`, `""`) + `"`

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	_, err := admin.ExecContext(ctx, "DROP SCHEMA IF EXISTS "+quoted+" CASCADE")
	require.NoError(t, err, "error dropping test schema")
	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+quoted)
	require.NoError(t, err, "error creating test schema")

	t.Cleanup(func() {
		_, _ = admin.ExecContext(context.Background(), "DROP SCHEMA IF EXISTS "+quoted+" CASCADE") // best effort
	})

	return withSearchPath(dsn, schema)
}

// ConnectSQLXOrSkip opens a single-connection *sqlx.DB on a fresh schema of the test database.
func ConnectSQLXOrSkip(t testing.TB, schema string) *sqlx.DB {
	t.Helper()

	return ConnectSQLX(t, SchemaDSN(t, schema))
}

// ConnectPGXPoolOrSkip opens a pgx pool on a fresh schema of the test database.
func ConnectPGXPoolOrSkip(t testing.TB, schema string) *pgxpool.Pool {
	t.Helper()

	return ConnectPGXPool(t, SchemaDSN(t, schema))
}

// ConnectSQLX opens a single-connection *sqlx.DB on dsn and closes it when the test ends.
func ConnectSQLX(t testing.TB, dsn string) *sqlx.DB {
	t.Helper()

	db := connectSQLX(t, dsn)
	db.SetMaxOpenConns(1)

	return db
}

// ConnectPGXPool opens a pgx pool on dsn and closes it when the test ends.
func ConnectPGXPool(t testing.TB, dsn string) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "error connecting to DB pool in test setup")
	require.NoError(t, pool.Ping(ctx), "error pinging the test database")

	t.Cleanup(pool.Close)

	return pool
}

func connectSQLX(t testing.TB, dsn string) *sqlx.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	require.NoError(t, err, "error connecting to the test database")

	t.Cleanup(func() {
		_ = db.Close() // makes no sense to handle this
	})

	return db
}

// withSearchPath adds a search_path runtime parameter to a URL or keyword/value DSN.
func withSearchPath(dsn, schema string) string {
	if parsed, err := url.Parse(dsn); err == nil && (parsed.Scheme == "postgres" || parsed.Scheme == "postgresql") {
		query := parsed.Query()
		query.Set("search_path", schema)
		parsed.RawQuery = query.Encode()

		return parsed.String()
	}

	return fmt.Sprintf("%s search_path=%s", dsn, schema)
}
