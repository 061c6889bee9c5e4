package ddl

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	tabledef "github.com/sonohara/tabledef"
)

const fixtureCatalogYAML = `
libraries:
  - name: work
    schema_override: dbo
    tables:
      - name: test
        columns:
          - name: x
            kind: num
            length: 8
            label: blah
            nullable: true
          - name: y
            kind: char
            length: 4
            nullable: true
        indexes:
          - index: pk
            column: x
            position: 1
            unique: true
            no_missing: true
          - index: pk
            column: y
            position: 2
            unique: true
            no_missing: true
      - name: recent_orders
        kind: view
        columns:
          - name: id
            kind: num
            length: 8
`

func TestLoadCatalogFromYAML(t *testing.T) {
	t.Run("LoadsLibrariesTablesAndIndexes", func(t *testing.T) {
		catalog, err := LoadCatalogFromYAML(strings.NewReader(fixtureCatalogYAML))
		assert.NoError(t, err)

		tables, err := catalog.Tables("work", "")
		assert.NoError(t, err)
		assert.Equal(t, 2, len(tables))
		assert.Equal(t, tabledef.KindTable, tables[0].Kind)
		assert.Equal(t, tabledef.KindView, tables[1].Kind)

		columns, err := catalog.Columns("work", "test")
		assert.NoError(t, err)
		assert.Equal(t, 2, len(columns))
		assert.Equal(t, "blah", columns[0].Label)

		entries, err := catalog.IndexEntries("work", "test")
		assert.NoError(t, err)
		assert.Equal(t, 2, len(entries))
		assert.True(t, entries[0].NoMissing)

		schema, ok, err := catalog.SchemaOverride("work")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dbo", schema)
	})

	t.Run("PositionsDefaultToDeclarationOrder", func(t *testing.T) {
		catalog, err := LoadCatalogFromYAML(strings.NewReader(fixtureCatalogYAML))
		assert.NoError(t, err)

		columns, err := catalog.Columns("work", "test")
		assert.NoError(t, err)
		assert.Equal(t, 1, columns[0].Position)
		assert.Equal(t, 2, columns[1].Position)
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		_, err := LoadCatalogFromYAML(strings.NewReader("libraries: []\n"))
		assert.True(t, errors.Is(err, ErrEmptyCatalogDocument))
	})

	t.Run("UnknownTableKind", func(t *testing.T) {
		doc := `
libraries:
  - name: work
    tables:
      - name: t
        kind: sequence
`
		_, err := LoadCatalogFromYAML(strings.NewReader(doc))
		assert.True(t, errors.Is(err, ErrUnknownTableKind))
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		_, err := LoadCatalogFromYAML(strings.NewReader("libraries: [oops"))
		assert.Error(t, err)
	})
}
