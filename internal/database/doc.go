// Package database provides the PostgreSQL connection pool backing the
// optional order-snapshot store.
package database
