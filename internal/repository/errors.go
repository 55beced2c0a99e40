package repository

import "errors"

var (
	// ErrDataSourceUnavailable means the backing store could not be read at all.
	ErrDataSourceUnavailable = errors.New("fund data source unavailable")
	// ErrMalformedData means the store was read but its content is not a valid fund catalog.
	ErrMalformedData = errors.New("malformed fund data")
)

// Source names reported by the catalog repositories
const (
	SourceStatic   = "static"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)
