// Package db owns driver wiring for the two backing stores and the Postgres
// schema migrations. Request-path code never touches it directly; it goes
// through the repository interfaces instead.
package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the connection lifecycle contract both backends satisfy.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
