package repository

import "errors"

var (
	// ErrNotFound is returned by id-targeted mutations when no document
	// matches the id.
	ErrNotFound = errors.New("document not found")
)
