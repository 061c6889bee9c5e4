package ddl

import (
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// MemoryCatalog is an in-memory Catalog used for YAML-loaded catalogs and
// tests. Lookups are case-insensitive like the real catalogs.
type MemoryCatalog struct {
	tables    []tabledef.TableDef
	columns   map[string][]tabledef.ColumnDef
	indexes   map[string][]tabledef.IndexEntry
	overrides map[string]string
	failure   error
}

// NewMemoryCatalog creates an empty in-memory catalog
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		columns:   make(map[string][]tabledef.ColumnDef),
		indexes:   make(map[string][]tabledef.IndexEntry),
		overrides: make(map[string]string),
	}
}

// AddTable registers a table with its column and index records
func (c *MemoryCatalog) AddTable(table tabledef.TableDef, columns []tabledef.ColumnDef, indexes []tabledef.IndexEntry) {
	c.tables = append(c.tables, table)
	key := catalogKey(table.Library, table.Name)
	c.columns[key] = columns
	c.indexes[key] = indexes
}

// SetSchemaOverride registers a SQL Server schema override for a library
func (c *MemoryCatalog) SetSchemaOverride(library, schema string) {
	c.overrides[strings.ToLower(library)] = schema
}

// SetFailure makes every subsequent query fail with err. Used by tests to
// simulate an unreachable metadata source.
func (c *MemoryCatalog) SetFailure(err error) {
	c.failure = err
}

// Tables implements Catalog
func (c *MemoryCatalog) Tables(library, tableFilter string) ([]tabledef.TableDef, error) {
	if c.failure != nil {
		return nil, c.failure
	}
	var matched []tabledef.TableDef
	for _, table := range c.tables {
		if strings.EqualFold(table.Library, library) && MatchIdentifier(tableFilter, table.Name) {
			matched = append(matched, table)
		}
	}
	return matched, nil
}

// Columns implements Catalog
func (c *MemoryCatalog) Columns(library, table string) ([]tabledef.ColumnDef, error) {
	if c.failure != nil {
		return nil, c.failure
	}
	return c.columns[catalogKey(library, table)], nil
}

// IndexEntries implements Catalog
func (c *MemoryCatalog) IndexEntries(library, table string) ([]tabledef.IndexEntry, error) {
	if c.failure != nil {
		return nil, c.failure
	}
	return c.indexes[catalogKey(library, table)], nil
}

// SchemaOverride implements Catalog
func (c *MemoryCatalog) SchemaOverride(library string) (string, bool, error) {
	if c.failure != nil {
		return "", false, c.failure
	}
	schema, ok := c.overrides[strings.ToLower(library)]
	return schema, ok, nil
}

func catalogKey(library, table string) string {
	return strings.ToLower(library) + "." + strings.ToLower(table)
}
