// Command seeder recreates the library database content, prints every table and runs the reports.
// It exits non-zero only when the database cannot be reached; every later failure is reported and skipped.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-coursework/seeder"
	"github.com/AntonStoeckl/library-coursework/shell"
	"github.com/AntonStoeckl/library-coursework/shell/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seeder failed: %v", err)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	logger := shell.NewLogger(os.Stderr)
	palette := shell.DetectPalette()

	pgCfg, err := config.PostgresFromEnv()
	if err != nil {
		return err
	}

	retryCfg, err := config.RetryFromEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to database", "target", pgCfg.Redacted())

	db, err := shell.ConnectWithRetry(
		ctx,
		func(ctx context.Context) (*sqlx.DB, error) {
			return config.OpenSingleConnectionSQLX(ctx, pgCfg)
		},
		retryCfg.Options(logger)...,
	)
	if err != nil {
		fmt.Println(palette.Error("✗ Could not connect to the database"))
		return err
	}
	defer func() {
		_ = db.Close() // process exits right after
	}()

	fmt.Println(palette.Success("✓ Connected to the database"))

	s, err := seeder.New(db, seeder.WithLogger(logger), seeder.WithPalette(palette))
	if err != nil {
		return err
	}

	s.Run(ctx, os.Stdout)

	return nil
}
