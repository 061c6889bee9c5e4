package ddl

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTSQLRenderer(t *testing.T) {
	renderer := &tsqlRenderer{}

	t.Run("ScenarioA", func(t *testing.T) {
		lines := renderer.RenderTable(scenarioTable(), scenarioGroups(true))

		expected := []string{
			"if exists (select * from sysobjects where name = 'test' and xtype = 'U')",
			"  drop table [test]",
			"GO",
			"create table [work].[test]",
			"(",
			"  [x] decimal(18,5)",
			" ,[y] varchar(4)",
			" ,constraint [pk] PRIMARY KEY (x,y)",
			")",
			"GO",
			"exec sp_addextendedproperty @name = N'MS_Description', @value = N'blah',",
			"  @level0type = N'SCHEMA', @level0name = N'work',",
			"  @level1type = N'TABLE', @level1name = N'test',",
			"  @level2type = N'COLUMN', @level2name = N'x'",
			"GO",
		}
		assert.Equal(t, expected, lines)
	})

	t.Run("ScenarioBNonUniqueIndexOmitted", func(t *testing.T) {
		lines := renderer.RenderTable(scenarioTable(), scenarioGroups(false))
		for _, line := range lines {
			assert.NotContains(t, line, "PRIMARY KEY")
			assert.NotContains(t, line, "pk")
		}
	})

	t.Run("SchemaOverrideUsedForQualifiedName", func(t *testing.T) {
		meta := scenarioTable()
		meta.Schema = "dbo"

		lines := renderer.RenderTable(meta, nil)
		assert.Contains(t, strings.Join(lines, "\n"), "create table [dbo].[test]")
		// the drop guard stays keyed on the bare table name
		assert.Equal(t, "  drop table [test]", lines[1])
	})

	t.Run("EmptySchemaFallsBackToLibrary", func(t *testing.T) {
		meta := scenarioTable()
		meta.Schema = ""

		lines := renderer.RenderTable(meta, nil)
		assert.Contains(t, strings.Join(lines, "\n"), "[work].[test]")
	})

	t.Run("NotNullColumns", func(t *testing.T) {
		meta := scenarioTable()
		meta.Columns[1].Nullable = false

		lines := renderer.RenderTable(meta, nil)
		assert.Equal(t, " ,[y] varchar(4) not null", lines[6])
	})

	t.Run("LabelQuotesEscaped", func(t *testing.T) {
		meta := scenarioTable()
		meta.Columns[0].Label = "it's x"

		lines := renderer.RenderTable(meta, nil)
		assert.Contains(t, strings.Join(lines, "\n"), "N'it''s x'")
	})

	t.Run("UnlabeledColumnsEmitNoExtendedProperty", func(t *testing.T) {
		meta := scenarioTable()
		meta.Columns[0].Label = ""

		lines := renderer.RenderTable(meta, nil)
		assert.NotContains(t, strings.Join(lines, "\n"), "sp_addextendedproperty")
	})
}
