package ddl

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	tabledef "github.com/sonohara/tabledef"
)

func TestNativeRenderer(t *testing.T) {
	renderer := &nativeRenderer{}

	t.Run("ScenarioA", func(t *testing.T) {
		lines := renderer.RenderTable(scenarioTable(), scenarioGroups(true))

		expected := []string{
			"create table work.test",
			"(",
			`  x num length=8 label="blah"`,
			" ,y char length=4",
			");",
			"create unique index pk on work.test (x,y);",
		}
		assert.Equal(t, expected, lines)
	})

	t.Run("ScenarioBNonUniqueIndexStillRendered", func(t *testing.T) {
		lines := renderer.RenderTable(scenarioTable(), scenarioGroups(false))
		assert.Equal(t, "create index pk on work.test (x,y);", lines[len(lines)-1])
	})

	t.Run("FormatAndNotNull", func(t *testing.T) {
		meta := TableMetadata{
			Table: tabledef.TableDef{Library: "sales", Name: "orders", Kind: tabledef.KindTable},
			Columns: []tabledef.ColumnDef{
				{Name: "ordered_at", Kind: tabledef.ColumnNumeric, Length: 8, Format: "DATETIME19.", Nullable: false, Position: 1},
			},
		}

		lines := renderer.RenderTable(meta, nil)
		assert.Equal(t, "  ordered_at num length=8 format=DATETIME19. not null", lines[2])
	})

	t.Run("SingleCharFormatOmitted", func(t *testing.T) {
		meta := scenarioTable()
		meta.Columns[0].Format = "$"

		lines := renderer.RenderTable(meta, nil)
		assert.NotContains(t, lines[2], "format=")
	})

	t.Run("ViewKind", func(t *testing.T) {
		meta := scenarioTable()
		meta.Table.Kind = tabledef.KindView

		lines := renderer.RenderTable(meta, nil)
		assert.Equal(t, "create view work.test", lines[0])
	})

	t.Run("HeaderIsSingleComment", func(t *testing.T) {
		header := renderer.Header()
		assert.Equal(t, 1, len(header))
		assert.Contains(t, header[0], "/*")
	})
}
