// Package postgres implements the store interfaces on PostgreSQL through
// the pgx database/sql driver. It also owns the schema: goose migrations
// for each service are embedded in the binary and applied by Migrate.
package postgres
