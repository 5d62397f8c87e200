package config

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// OpenSQLX opens and pings a *sqlx.DB for the library database.
func OpenSQLX(ctx context.Context, cfg PostgresConfig) (*sqlx.DB, error) {
	const defaultMaxOpenConnections = 8
	const defaultMaxIdleConnections = 2
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5

	return openSQLX(ctx, cfg, defaultMaxOpenConnections, defaultMaxIdleConnections, defaultMaxConnLifetime, defaultMaxConnIdleTime)
}

// OpenSingleConnectionSQLX opens a *sqlx.DB that never holds more than one server connection.
// The seeder uses it so that a whole run happens on the same session.
func OpenSingleConnectionSQLX(ctx context.Context, cfg PostgresConfig) (*sqlx.DB, error) {
	return openSQLX(ctx, cfg, 1, 1, 0, 0)
}

func openSQLX(
	ctx context.Context,
	cfg PostgresConfig,
	maxOpen, maxIdle int,
	maxLifetime, maxIdleTime time.Duration,
) (*sqlx.DB, error) {

	db, err := sqlx.Open(driverPostgres, cfg.DSN())
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	db.SetConnMaxIdleTime(maxIdleTime)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, errors.Join(ErrOpeningDatabaseFailed, pingErr)
	}

	return db, nil
}
