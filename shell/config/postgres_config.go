package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-coursework/shell"
)

const (
	envPostgresHost     = "POSTGRES_HOST"
	envPostgresPort     = "POSTGRES_PORT"
	envPostgresDB       = "POSTGRES_DB"
	envPostgresUser     = "POSTGRES_USER"
	envPostgresPassword = "POSTGRES_PASSWORD"
	envPostgresSSLMode  = "POSTGRES_SSLMODE"
	envConnectAttempts  = "DB_CONNECT_ATTEMPTS"
	envConnectDelay     = "DB_CONNECT_DELAY"

	defaultPostgresHost     = "postgres"
	defaultPostgresPort     = 5432
	defaultPostgresDB       = "library_db"
	defaultPostgresUser     = "admin"
	defaultPostgresPassword = "password"
	defaultPostgresSSLMode  = "disable"
	defaultConnectAttempts  = 30
	defaultConnectDelay     = 2 * time.Second
)

// PostgresConfig holds the connection parameters of the library database.
type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// RetryConfig holds the connection retry budget.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

// PostgresFromEnv reads the POSTGRES_* variables.
func PostgresFromEnv() (PostgresConfig, error) {
	port, err := intFromEnv(envPostgresPort, defaultPostgresPort)
	if err != nil {
		return PostgresConfig{}, err
	}

	return PostgresConfig{
		Host:     stringFromEnv(envPostgresHost, defaultPostgresHost),
		Port:     port,
		Database: stringFromEnv(envPostgresDB, defaultPostgresDB),
		User:     stringFromEnv(envPostgresUser, defaultPostgresUser),
		Password: stringFromEnv(envPostgresPassword, defaultPostgresPassword),
		SSLMode:  stringFromEnv(envPostgresSSLMode, defaultPostgresSSLMode),
	}, nil
}

// RetryFromEnv reads DB_CONNECT_ATTEMPTS and DB_CONNECT_DELAY.
func RetryFromEnv() (RetryConfig, error) {
	attempts, err := intFromEnv(envConnectAttempts, defaultConnectAttempts)
	if err != nil {
		return RetryConfig{}, err
	}

	delay, err := durationFromEnv(envConnectDelay, defaultConnectDelay)
	if err != nil {
		return RetryConfig{}, err
	}

	return RetryConfig{MaxAttempts: attempts, Delay: delay}, nil
}

// Options converts the retry budget into shell retry options.
func (c RetryConfig) Options(logger shell.Logger) []shell.RetryOption {
	return []shell.RetryOption{
		shell.WithMaxAttempts(c.MaxAttempts),
		shell.WithDelay(c.Delay),
		shell.WithRetryLogger(logger),
	}
}

// DSN returns the URL form of the connection string, understood by pgx and lib/pq alike.
func (c PostgresConfig) DSN() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: query.Encode(),
	}

	return u.String()
}

// Redacted returns the DSN with the password masked, for logging.
func (c PostgresConfig) Redacted() string {
	u, err := url.Parse(c.DSN())
	if err != nil {
		return ""
	}

	return u.Redacted()
}
