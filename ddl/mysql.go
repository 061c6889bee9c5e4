package ddl

import (
	"database/sql"
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// MySQLCatalog maps information_schema into the two-kind column model.
// The library name is matched against the MySQL schema (database) name.
type MySQLCatalog struct {
	db *sql.DB
}

// NewMySQLCatalog creates a catalog over an open MySQL connection
func NewMySQLCatalog(db *sql.DB) *MySQLCatalog {
	return &MySQLCatalog{db: db}
}

// Tables implements Catalog
func (c *MySQLCatalog) Tables(library, tableFilter string) ([]tabledef.TableDef, error) {
	query := `
		SELECT table_name, table_type
		FROM information_schema.tables
		WHERE LOWER(table_schema) = LOWER(?)
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

// Columns implements Catalog
func (c *MySQLCatalog) Columns(library, table string) ([]tabledef.ColumnDef, error) {
	query := `
		SELECT column_name, data_type, COALESCE(character_maximum_length, 0),
		       is_nullable, ordinal_position, COALESCE(column_comment, '')
		FROM information_schema.columns
		WHERE LOWER(table_schema) = LOWER(?) AND LOWER(table_name) = LOWER(?)
		ORDER BY ordinal_position`
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

		kind, length, format := classifyMySQLType(dataType, int(maxLength))
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
func (c *MySQLCatalog) IndexEntries(library, table string) ([]tabledef.IndexEntry, error) {
	query := `
		SELECT index_name, column_name, seq_in_index, non_unique, COALESCE(nullable, '')
		FROM information_schema.statistics
		WHERE LOWER(table_schema) = LOWER(?) AND LOWER(table_name) = LOWER(?)
		ORDER BY index_name, seq_in_index`
	rows, err := c.db.Query(query, library, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []tabledef.IndexEntry
	for rows.Next() {
		var indexName, columnName, nullable string
		var seq, nonUnique int
		if err := rows.Scan(&indexName, &columnName, &seq, &nonUnique, &nullable); err != nil {
			return nil, err
		}
		entries = append(entries, tabledef.IndexEntry{
			Index:     indexName,
			Column:    columnName,
			Position:  seq,
			Unique:    nonUnique == 0,
			NoMissing: !strings.EqualFold(nullable, "YES"),
		})
	}

	return entries, rows.Err()
}

// SchemaOverride implements Catalog; overrides apply via WithOverrides
func (c *MySQLCatalog) SchemaOverride(library string) (string, bool, error) {
	return "", false, nil
}

// classifyMySQLType maps a MySQL data type to the catalog model
func classifyMySQLType(dataType string, maxLength int) (tabledef.ColumnKind, int, string) {
	switch strings.ToLower(dataType) {
	case "date", "datetime", "timestamp", "time":
		return tabledef.ColumnNumeric, 8, "DATETIME19."
	case "char", "varchar", "text", "tinytext", "mediumtext", "longtext", "enum", "set":
		length := maxLength
		if length <= 0 {
			length = 255
		}
		return tabledef.ColumnCharacter, length, ""
	default:
		return tabledef.ColumnNumeric, 8, ""
	}
}
