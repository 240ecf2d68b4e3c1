// Package logger wraps zerolog construction so every component logs the same
// JSON shape to stdout.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger tagged with a role label ("server", "migrate", ...).
func New(role string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
