package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidEnvValue is returned when an environment variable cannot be parsed into its target type.
var ErrInvalidEnvValue = errors.New("invalid environment value")

// LoadDotEnv loads variables from the given .env files (or ".env" when none is given).
// Variables already present in the environment win, and a missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	existing := make([]string, 0, len(filenames))
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	return godotenv.Load(existing...)
}

func stringFromEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Join(ErrInvalidEnvValue, fmt.Errorf("%s=%q: %w", key, raw, err))
	}

	return val, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	val, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Join(ErrInvalidEnvValue, fmt.Errorf("%s=%q: %w", key, raw, err))
	}

	return val, nil
}
