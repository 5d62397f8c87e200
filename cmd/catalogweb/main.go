// Command catalogweb serves the library catalog index page.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-coursework/catalog/postgresengine"
	"github.com/AntonStoeckl/library-coursework/catalog/web"
	"github.com/AntonStoeckl/library-coursework/shell"
	"github.com/AntonStoeckl/library-coursework/shell/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("catalog web failed: %v", err)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	logger := shell.NewLogger(os.Stderr)

	pgCfg, err := config.PostgresFromEnv()
	if err != nil {
		return err
	}

	retryCfg, err := config.RetryFromEnv()
	if err != nil {
		return err
	}

	catalogCfg, err := config.CatalogFromEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeDB, err := openStore(ctx, catalogCfg.Driver, pgCfg, retryCfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	server, err := web.NewServer(store, web.WithHeading(catalogCfg.Heading), web.WithLogger(logger))
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              catalogCfg.ListenAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("catalog listening", "addr", catalogCfg.ListenAddr, "driver", catalogCfg.Driver)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

// openStore connects with retry through the configured client library and builds the catalog store on it.
func openStore(
	ctx context.Context,
	driver string,
	pgCfg config.PostgresConfig,
	retryCfg config.RetryConfig,
	logger shell.Logger,
) (postgresengine.Store, func(), error) {

	options := retryCfg.Options(logger)

	switch driver {
	case config.DriverSQL:
		db, err := shell.ConnectWithRetry(ctx, func(ctx context.Context) (*sql.DB, error) {
			return config.OpenSQLDB(ctx, pgCfg)
		}, options...)
		if err != nil {
			return postgresengine.Store{}, nil, err
		}
		store, err := postgresengine.NewStoreFromSQLDB(db, postgresengine.WithLogger(logger))

		return store, func() { _ = db.Close() }, err

	case config.DriverSQLX:
		db, err := shell.ConnectWithRetry(ctx, func(ctx context.Context) (*sqlx.DB, error) {
			return config.OpenSQLX(ctx, pgCfg)
		}, options...)
		if err != nil {
			return postgresengine.Store{}, nil, err
		}
		store, err := postgresengine.NewStoreFromSQLX(db, postgresengine.WithLogger(logger))

		return store, func() { _ = db.Close() }, err

	default:
		pool, err := shell.ConnectWithRetry(ctx, func(ctx context.Context) (*pgxpool.Pool, error) {
			return config.OpenPGXPool(ctx, pgCfg)
		}, options...)
		if err != nil {
			return postgresengine.Store{}, nil, err
		}
		store, err := postgresengine.NewStoreFromPGXPool(pool, postgresengine.WithLogger(logger))

		return store, pool.Close, err
	}
}
