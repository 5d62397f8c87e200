// Command triplechecker asks for three integers and tells whether they form a Pythagorean triple,
// in the interface language configured by TRIPLE_LOCALE.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonStoeckl/library-coursework/localization"
	"github.com/AntonStoeckl/library-coursework/localization/openaitranslator"
	"github.com/AntonStoeckl/library-coursework/localization/rediscache"
	"github.com/AntonStoeckl/library-coursework/shell"
	"github.com/AntonStoeckl/library-coursework/shell/config"
	"github.com/AntonStoeckl/library-coursework/triplechecker"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("triple checker failed: %v", err)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	logger := shell.NewLogger(os.Stderr)

	cfg, err := config.TripleCheckerFromEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	translator, closeTranslator, err := buildTranslator(cfg, logger)
	if err != nil {
		return err
	}
	defer closeTranslator()

	app := triplechecker.NewApp(
		localization.NewLocalizer(translator, localization.WithLogger(logger)),
		cfg.Locale,
		triplechecker.WithPalette(shell.DetectPalette()),
		triplechecker.WithLogger(logger),
	)

	return app.Run(ctx)
}

// buildTranslator picks the translation backend and wraps it with the Redis cache when one is configured.
func buildTranslator(cfg config.TripleCheckerConfig, logger shell.Logger) (localization.Translator, func(), error) {
	noop := func() {}

	if cfg.Translator == config.TranslatorNone {
		return localization.IdentityTranslator{}, noop, nil
	}

	translator, err := openaitranslator.New(openaitranslator.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	})
	if err != nil {
		return nil, noop, err
	}

	if !cfg.Redis.Enabled() {
		return translator, noop, nil
	}

	cached, err := rediscache.Dial(
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		translator,
		rediscache.WithTTL(cfg.Redis.TTL),
		rediscache.WithPrefix(cfg.Redis.Prefix),
		rediscache.WithLogger(logger),
	)
	if err != nil {
		return nil, noop, err
	}

	return cached, func() { _ = cached.Close() }, nil
}
