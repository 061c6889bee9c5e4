package ddl

import "errors"

// Connection errors
var (
	ErrConnectionFailed    = errors.New("failed to connect to database")
	ErrInvalidDatabaseURL  = errors.New("invalid database URL")
	ErrUnsupportedDatabase = errors.New("unsupported database type")
	ErrEmptyDatabaseURL    = errors.New("database URL cannot be empty")
)

// Writer errors
var (
	ErrNilDestination  = errors.New("destination stream is nil")
	ErrEchoUnsupported = errors.New("destination stream does not support re-reading")
)

// Catalog document errors
var (
	ErrEmptyCatalogDocument = errors.New("catalog document defines no libraries")
	ErrUnknownTableKind     = errors.New("unknown table kind")
)
