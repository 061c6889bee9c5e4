package ddl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	tabledef "github.com/sonohara/tabledef"
)

// catalogDocument is the YAML shape of a file-based catalog
type catalogDocument struct {
	Libraries []libraryDocument `yaml:"libraries"`
}

type libraryDocument struct {
	Name           string          `yaml:"name"`
	SchemaOverride string          `yaml:"schema_override"`
	Tables         []tableDocument `yaml:"tables"`
}

type tableDocument struct {
	Name    string                `yaml:"name"`
	Kind    string                `yaml:"kind"` // table (default) or view
	Columns []tabledef.ColumnDef  `yaml:"columns"`
	Indexes []tabledef.IndexEntry `yaml:"indexes"`
}

// LoadCatalogFromYAML reads a YAML catalog document into a MemoryCatalog.
// Column positions default to declaration order when omitted.
func LoadCatalogFromYAML(r io.Reader) (*MemoryCatalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog document: %w", err)
	}

	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog document: %w", err)
	}
	if len(doc.Libraries) == 0 {
		return nil, ErrEmptyCatalogDocument
	}

	catalog := NewMemoryCatalog()
	for _, library := range doc.Libraries {
		if library.SchemaOverride != "" {
			catalog.SetSchemaOverride(library.Name, library.SchemaOverride)
		}
		for _, table := range library.Tables {
			kind, err := parseTableKind(table.Kind)
			if err != nil {
				return nil, fmt.Errorf("%w (table %s.%s)", err, library.Name, table.Name)
			}

			columns := make([]tabledef.ColumnDef, len(table.Columns))
			copy(columns, table.Columns)
			for i := range columns {
				if columns[i].Position == 0 {
					columns[i].Position = i + 1
				}
			}

			catalog.AddTable(tabledef.TableDef{
				Library: library.Name,
				Name:    table.Name,
				Kind:    kind,
			}, columns, table.Indexes)
		}
	}

	return catalog, nil
}

// LoadCatalogFile loads a YAML catalog document from a file path
func LoadCatalogFile(path string) (*MemoryCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return LoadCatalogFromYAML(f)
}

func parseTableKind(kind string) (tabledef.TableKind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "table":
		return tabledef.KindTable, nil
	case "view":
		return tabledef.KindView, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTableKind, kind)
	}
}
