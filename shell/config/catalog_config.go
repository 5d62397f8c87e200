package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	envCatalogAddr    = "CATALOG_ADDR"
	envCatalogHeading = "CATALOG_HEADING"
	envCatalogDriver  = "CATALOG_DB_DRIVER"

	defaultCatalogAddr    = ":8080"
	defaultCatalogHeading = "Library catalog"
)

// Database client libraries the catalog store can run on.
const (
	DriverPGX  = "pgx"
	DriverSQL  = "sql"
	DriverSQLX = "sqlx"
)

// ErrUnknownDriver is returned for a CATALOG_DB_DRIVER value other than pgx, sql or sqlx.
var ErrUnknownDriver = errors.New("unknown database driver")

// CatalogConfig is the configuration of the catalog web server.
type CatalogConfig struct {
	ListenAddr string
	Heading    string
	Driver     string
}

// CatalogFromEnv reads CATALOG_ADDR, CATALOG_HEADING and CATALOG_DB_DRIVER (default pgx).
func CatalogFromEnv() (CatalogConfig, error) {
	driver := strings.ToLower(stringFromEnv(envCatalogDriver, DriverPGX))

	switch driver {
	case DriverPGX, DriverSQL, DriverSQLX:
	default:
		return CatalogConfig{}, errors.Join(ErrUnknownDriver, fmt.Errorf("%s=%q", envCatalogDriver, driver))
	}

	return CatalogConfig{
		ListenAddr: stringFromEnv(envCatalogAddr, defaultCatalogAddr),
		Heading:    stringFromEnv(envCatalogHeading, defaultCatalogHeading),
		Driver:     driver,
	}, nil
}
