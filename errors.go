package tabledef

import "errors"

// Common errors used throughout the tabledef package
var (
	// ErrUnsupportedDialect is returned when an unknown dialect name is requested.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
	// ErrNotFound indicates the library/table filter matched zero tables.
	ErrNotFound = errors.New("no matching tables found")
	// ErrCatalogUnavailable indicates the metadata source could not be queried.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrMalformedIndexMetadata indicates index entries reference columns that do not
	// exist or carry duplicate positions. Rendering continues best-effort.
	ErrMalformedIndexMetadata = errors.New("malformed index metadata")
)
