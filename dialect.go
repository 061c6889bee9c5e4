package tabledef

import (
	"fmt"
	"strings"
)

// Dialect represents supported DDL output dialects
// This type is shared across all packages
type Dialect string

const (
	DialectNative Dialect = "native"
	DialectTSQL   Dialect = "tsql"
)

// ParseDialect normalizes a dialect name from configuration or the command line.
// An empty string selects the native dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return DialectNative, nil
	case "tsql", "mssql", "sqlserver":
		return DialectTSQL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, name)
	}
}

// String returns the canonical dialect name
func (d Dialect) String() string {
	return string(d)
}
