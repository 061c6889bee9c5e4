package ddl

import (
	"fmt"

	tabledef "github.com/sonohara/tabledef"
)

// TableMetadata is the immutable per-table snapshot assembled by the Collector.
// Schema carries the resolved SQL Server schema (override or library name) so
// renderers never reach back into the catalog.
type TableMetadata struct {
	Table   tabledef.TableDef
	Schema  string
	Columns []tabledef.ColumnDef
	Indexes []tabledef.IndexEntry
}

// Collector queries a catalog and assembles table metadata snapshots
type Collector struct {
	catalog Catalog
}

// NewCollector creates a collector over the given catalog
func NewCollector(catalog Catalog) *Collector {
	return &Collector{catalog: catalog}
}

// Tables returns the table descriptors matching the filter. The library
// defaults to the conventional work library when empty.
func (c *Collector) Tables(library, tableFilter string) ([]tabledef.TableDef, error) {
	if library == "" {
		library = tabledef.DefaultLibrary
	}

	tables, err := c.catalog.Tables(library, tableFilter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tabledef.ErrCatalogUnavailable, err)
	}
	if len(tables) == 0 {
		if tableFilter == "" {
			return nil, fmt.Errorf("%w: library %q", tabledef.ErrNotFound, library)
		}
		return nil, fmt.Errorf("%w: library %q, table %q", tabledef.ErrNotFound, library, tableFilter)
	}

	return tables, nil
}

// ResolveSchema resolves the SQL Server schema for a library: the registered
// override when one exists, otherwise the library name itself.
func (c *Collector) ResolveSchema(library string) (string, error) {
	if library == "" {
		library = tabledef.DefaultLibrary
	}

	schema, ok, err := c.catalog.SchemaOverride(library)
	if err != nil {
		return "", fmt.Errorf("%w: %v", tabledef.ErrCatalogUnavailable, err)
	}
	if !ok || schema == "" {
		return library, nil
	}

	return schema, nil
}

// CollectTable fetches the column and index records of one table
func (c *Collector) CollectTable(table tabledef.TableDef, schema string) (TableMetadata, error) {
	columns, err := c.catalog.Columns(table.Library, table.Name)
	if err != nil {
		return TableMetadata{}, fmt.Errorf("%w: columns of %s.%s: %v",
			tabledef.ErrCatalogUnavailable, table.Library, table.Name, err)
	}

	entries, err := c.catalog.IndexEntries(table.Library, table.Name)
	if err != nil {
		return TableMetadata{}, fmt.Errorf("%w: indexes of %s.%s: %v",
			tabledef.ErrCatalogUnavailable, table.Library, table.Name, err)
	}

	return TableMetadata{
		Table:   table,
		Schema:  schema,
		Columns: columns,
		Indexes: entries,
	}, nil
}

// Collect assembles the full snapshot set for a library in one call. The batch
// runner collects table by table instead so one bad table cannot abort a run.
func (c *Collector) Collect(library, tableFilter string) ([]TableMetadata, error) {
	tables, err := c.Tables(library, tableFilter)
	if err != nil {
		return nil, err
	}

	schema, err := c.ResolveSchema(library)
	if err != nil {
		return nil, err
	}

	result := make([]TableMetadata, 0, len(tables))
	for _, table := range tables {
		meta, err := c.CollectTable(table, schema)
		if err != nil {
			return nil, err
		}
		result = append(result, meta)
	}

	return result, nil
}
