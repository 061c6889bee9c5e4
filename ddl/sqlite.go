package ddl

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// SQLiteCatalog maps the SQLite catalog into the two-kind column model.
// SQLite has no library concept, so every table belongs to whichever library
// the caller asks for; the requested name becomes the output qualifier.
type SQLiteCatalog struct {
	db *sql.DB
}

// NewSQLiteCatalog creates a catalog over an open SQLite connection
func NewSQLiteCatalog(db *sql.DB) *SQLiteCatalog {
	return &SQLiteCatalog{db: db}
}

// Tables implements Catalog
func (c *SQLiteCatalog) Tables(library, tableFilter string) ([]tabledef.TableDef, error) {
	query := `SELECT name, type FROM sqlite_master WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%' ORDER BY name`
	rows, err := c.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []tabledef.TableDef
	for rows.Next() {
		var name, objectType string
		if err := rows.Scan(&name, &objectType); err != nil {
			return nil, err
		}
		if !MatchIdentifier(tableFilter, name) {
			continue
		}
		kind := tabledef.KindTable
		if objectType == "view" {
			kind = tabledef.KindView
		}
		tables = append(tables, tabledef.TableDef{Library: library, Name: name, Kind: kind})
	}

	return tables, rows.Err()
}

// Columns implements Catalog
func (c *SQLiteCatalog) Columns(library, table string) ([]tabledef.ColumnDef, error) {
	rows, err := c.db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []tabledef.ColumnDef
	for rows.Next() {
		var cid, notNull, pk int
		var name, declaredType string
		var defaultValue sql.NullString
		if err := rows.Scan(&cid, &name, &declaredType, &notNull, &defaultValue, &pk); err != nil {
			return nil, err
		}

		kind, length, format := classifySQLiteType(declaredType)
		columns = append(columns, tabledef.ColumnDef{
			Name:     name,
			Kind:     kind,
			Length:   length,
			Format:   format,
			Nullable: notNull == 0,
			Position: cid + 1,
		})
	}

	return columns, rows.Err()
}

// IndexEntries implements Catalog
func (c *SQLiteCatalog) IndexEntries(library, table string) ([]tabledef.IndexEntry, error) {
	notNull, err := c.notNullColumns(table)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.Query(fmt.Sprintf("PRAGMA index_list(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type indexInfo struct {
		name   string
		unique bool
	}
	var indexList []indexInfo
	for rows.Next() {
		var seq, unique int
		var name, origin string
		var partial int
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			return nil, err
		}
		// auto-created indexes back constraints already expressed elsewhere
		if strings.HasPrefix(name, "sqlite_autoindex_") {
			continue
		}
		indexList = append(indexList, indexInfo{name: name, unique: unique == 1})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var entries []tabledef.IndexEntry
	for _, index := range indexList {
		memberRows, err := c.db.Query(fmt.Sprintf("PRAGMA index_info(%q)", index.name))
		if err != nil {
			return nil, err
		}
		for memberRows.Next() {
			var seqno, cid int
			var columnName string
			if err := memberRows.Scan(&seqno, &cid, &columnName); err != nil {
				memberRows.Close()
				return nil, err
			}
			entries = append(entries, tabledef.IndexEntry{
				Index:     index.name,
				Column:    columnName,
				Position:  seqno + 1,
				Unique:    index.unique,
				NoMissing: notNull[strings.ToLower(columnName)],
			})
		}
		err = memberRows.Err()
		memberRows.Close()
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// SchemaOverride implements Catalog. SQLite has no engine registry, so there
// are never overrides; configuration-level overrides apply via WithOverrides.
func (c *SQLiteCatalog) SchemaOverride(library string) (string, bool, error) {
	return "", false, nil
}

func (c *SQLiteCatalog) notNullColumns(table string) (map[string]bool, error) {
	rows, err := c.db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notNull := make(map[string]bool)
	for rows.Next() {
		var cid, nn, pk int
		var name, declaredType string
		var defaultValue sql.NullString
		if err := rows.Scan(&cid, &name, &declaredType, &nn, &defaultValue, &pk); err != nil {
			return nil, err
		}
		notNull[strings.ToLower(name)] = nn == 1
	}

	return notNull, rows.Err()
}

// classifySQLiteType maps a declared SQLite type to the catalog model.
// SQLite affinity rules are loose; anything not recognizably textual is
// treated as numeric.
func classifySQLiteType(declared string) (tabledef.ColumnKind, int, string) {
	normalized := strings.ToLower(strings.TrimSpace(declared))
	base := normalized
	length := 0
	if open := strings.Index(normalized, "("); open >= 0 {
		base = strings.TrimSpace(normalized[:open])
		if close := strings.Index(normalized, ")"); close > open {
			if n, err := strconv.Atoi(strings.TrimSpace(normalized[open+1 : close])); err == nil {
				length = n
			}
		}
	}

	switch {
	case strings.Contains(base, "date") || strings.Contains(base, "time"):
		return tabledef.ColumnNumeric, 8, "DATETIME19."
	case strings.Contains(base, "char") || strings.Contains(base, "text") || strings.Contains(base, "clob") || base == "":
		if length <= 0 {
			length = 255
		}
		return tabledef.ColumnCharacter, length, ""
	default:
		return tabledef.ColumnNumeric, 8, ""
	}
}
