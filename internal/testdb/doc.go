// Package testdb provides helpers for PostgreSQL integration tests: locating
// the test database, applying a service's migrations, and isolating each test
// in a transaction that is always rolled back.
package testdb
