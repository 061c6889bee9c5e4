package ddl

import (
	"database/sql"
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// PostgreSQLCatalog maps information_schema and the pg_catalog into the
// two-kind column model. The library name is matched against the schema name.
type PostgreSQLCatalog struct {
	db *sql.DB
}

// NewPostgreSQLCatalog creates a catalog over an open PostgreSQL connection
func NewPostgreSQLCatalog(db *sql.DB) *PostgreSQLCatalog {
	return &PostgreSQLCatalog{db: db}
}

// Tables implements Catalog
func (c *PostgreSQLCatalog) Tables(library, tableFilter string) ([]tabledef.TableDef, error) {
	query := `
		SELECT table_name, table_type
		FROM information_schema.tables
		WHERE LOWER(table_schema) = LOWER($1)
		ORDER BY table_name`
	rows, err := c.db.Query(query, library)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []tabledef.TableDef
	for rows.Next() {
		var name, tableType string
		if err := rows.Scan(&name, &tableType); err != nil {
			return nil, err
		}
		if !MatchIdentifier(tableFilter, name) {
			continue
		}
		kind := tabledef.KindTable
		if strings.EqualFold(tableType, "VIEW") {
			kind = tabledef.KindView
		}
		tables = append(tables, tabledef.TableDef{Library: library, Name: name, Kind: kind})
	}

	return tables, rows.Err()
}

// Columns implements Catalog. Column comments become labels.
func (c *PostgreSQLCatalog) Columns(library, table string) ([]tabledef.ColumnDef, error) {
	query := `
		SELECT col.column_name, col.data_type,
		       COALESCE(col.character_maximum_length, 0),
		       col.is_nullable, col.ordinal_position,
		       COALESCE(pgd.description, '')
		FROM information_schema.columns col
		JOIN pg_catalog.pg_namespace ns ON ns.nspname = col.table_schema
		JOIN pg_catalog.pg_class cls ON cls.relname = col.table_name AND cls.relnamespace = ns.oid
		LEFT JOIN pg_catalog.pg_description pgd
		       ON pgd.objoid = cls.oid AND pgd.objsubid = col.ordinal_position
		WHERE LOWER(col.table_schema) = LOWER($1) AND LOWER(col.table_name) = LOWER($2)
		ORDER BY col.ordinal_position`
	rows, err := c.db.Query(query, library, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []tabledef.ColumnDef
	for rows.Next() {
		var name, dataType, isNullable, comment string
		var maxLength int64
		var position int
		if err := rows.Scan(&name, &dataType, &maxLength, &isNullable, &position, &comment); err != nil {
			return nil, err
		}

		kind, length, format := classifyPostgreSQLType(dataType, int(maxLength))
		columns = append(columns, tabledef.ColumnDef{
			Name:     name,
			Kind:     kind,
			Length:   length,
			Format:   format,
			Label:    comment,
			Nullable: strings.EqualFold(isNullable, "YES"),
			Position: position,
		})
	}

	return columns, rows.Err()
}

// IndexEntries implements Catalog
func (c *PostgreSQLCatalog) IndexEntries(library, table string) ([]tabledef.IndexEntry, error) {
	query := `
		SELECT i.relname, a.attname, k.ord, ix.indisunique, a.attnotnull
		FROM pg_catalog.pg_class t
		JOIN pg_catalog.pg_namespace n ON n.oid = t.relnamespace
		JOIN pg_catalog.pg_index ix ON ix.indrelid = t.oid
		JOIN pg_catalog.pg_class i ON i.oid = ix.indexrelid
		JOIN LATERAL unnest(ix.indkey) WITH ORDINALITY AS k(attnum, ord) ON true
		JOIN pg_catalog.pg_attribute a ON a.attrelid = t.oid AND a.attnum = k.attnum
		WHERE LOWER(n.nspname) = LOWER($1) AND LOWER(t.relname) = LOWER($2)
		ORDER BY i.relname, k.ord`
	rows, err := c.db.Query(query, library, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []tabledef.IndexEntry
	for rows.Next() {
		var indexName, columnName string
		var position int
		var unique, notNull bool
		if err := rows.Scan(&indexName, &columnName, &position, &unique, &notNull); err != nil {
			return nil, err
		}
		entries = append(entries, tabledef.IndexEntry{
			Index:     indexName,
			Column:    columnName,
			Position:  position,
			Unique:    unique,
			NoMissing: notNull,
		})
	}

	return entries, rows.Err()
}

// SchemaOverride implements Catalog; overrides apply via WithOverrides
func (c *PostgreSQLCatalog) SchemaOverride(library string) (string, bool, error) {
	return "", false, nil
}

// classifyPostgreSQLType maps a PostgreSQL data type to the catalog model
func classifyPostgreSQLType(dataType string, maxLength int) (tabledef.ColumnKind, int, string) {
	normalized := strings.ToLower(dataType)
	switch {
	case strings.HasPrefix(normalized, "timestamp"), normalized == "date", strings.HasPrefix(normalized, "time"):
		return tabledef.ColumnNumeric, 8, "DATETIME19."
	case normalized == "text", normalized == "character varying", normalized == "character",
		normalized == "varchar", normalized == "char", normalized == "uuid", normalized == "name":
		length := maxLength
		if length <= 0 {
			length = 255
		}
		return tabledef.ColumnCharacter, length, ""
	default:
		return tabledef.ColumnNumeric, 8, ""
	}
}
