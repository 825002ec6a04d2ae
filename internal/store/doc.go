// Package store defines the persistence interfaces used by the services.
// Each entity has a narrow repository interface (insert, find by key,
// update, delete) implemented in internal/platform/postgres. Writes take an
// explicit audit.Actor that the implementation stamps into audit columns.
package store
