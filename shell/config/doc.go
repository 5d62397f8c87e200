// Package config provides environment-driven configuration for the library tools.
//
// Every program calls LoadDotEnv once at startup; afterwards the typed loaders read plain environment
// variables and fall back to the defaults of the docker-compose setup (host "postgres", database
// "library_db", user "admin"). The Postgres factories mirror each other for pgx.Pool, sql.DB and sqlx.DB
// so that the read-model store can run on any of the three.
package config
