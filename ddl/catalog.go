package ddl

import (
	"path/filepath"
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// Catalog is the metadata source boundary. Implementations expose three record
// kinds (table, column, index membership) filterable by library and table name,
// plus the engine-specific schema-override registry used by the TSQL dialect.
// All methods are read-only; returned slices are snapshots the caller owns.
type Catalog interface {
	// Tables returns the tables of a library matching tableFilter. An empty
	// filter matches every table. Identifier matching is case-insensitive.
	Tables(library, tableFilter string) ([]tabledef.TableDef, error)

	// Columns returns the column definitions of one table in ordinal order.
	Columns(library, table string) ([]tabledef.ColumnDef, error)

	// IndexEntries returns the raw index-membership records of one table.
	IndexEntries(library, table string) ([]tabledef.IndexEntry, error)

	// SchemaOverride looks up the SQL Server schema registered for a library.
	// ok is false when no override exists.
	SchemaOverride(library string) (schema string, ok bool, err error)
}

// MatchIdentifier reports whether a catalog identifier matches a filter.
// Matching is case-insensitive; an empty filter matches everything and a
// filter containing '*' is treated as a wildcard pattern.
func MatchIdentifier(filter, name string) bool {
	if filter == "" {
		return true
	}
	if !strings.Contains(filter, "*") {
		return strings.EqualFold(filter, name)
	}
	matched, err := filepath.Match(strings.ToLower(filter), strings.ToLower(name))
	if err != nil {
		// Invalid pattern, fall back to exact match
		return strings.EqualFold(filter, name)
	}
	return matched
}

// OverrideCatalog decorates a Catalog with configuration-supplied schema
// overrides. Overrides from the wrapped catalog's own registry win only when
// the configuration has no entry for the library.
type OverrideCatalog struct {
	Catalog
	overrides map[string]string
}

// WithOverrides wraps a catalog with a library-to-schema override map.
// A nil or empty map returns the catalog unchanged.
func WithOverrides(catalog Catalog, overrides map[string]string) Catalog {
	if len(overrides) == 0 {
		return catalog
	}
	normalized := make(map[string]string, len(overrides))
	for library, schema := range overrides {
		normalized[strings.ToLower(library)] = schema
	}
	return &OverrideCatalog{Catalog: catalog, overrides: normalized}
}

// SchemaOverride consults the configured map first, then the wrapped catalog
func (c *OverrideCatalog) SchemaOverride(library string) (string, bool, error) {
	if schema, ok := c.overrides[strings.ToLower(library)]; ok {
		return schema, true, nil
	}
	return c.Catalog.SchemaOverride(library)
}
