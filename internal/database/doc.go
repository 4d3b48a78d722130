// Package database provides the Postgres connection pool, embedded schema
// migrations, and the record repository backing persistence and report
// aggregates.
package database
