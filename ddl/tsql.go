package ddl

import (
	"fmt"
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// tsqlRenderer produces batch-oriented SQL Server DDL: an idempotent drop
// guard before creation, GO separators after each batch, inferred column
// types, primary-key constraints embedded in the table body and column labels
// emitted as extended properties.
type tsqlRenderer struct{}

func (r *tsqlRenderer) Header() []string {
	return []string{"/* DDL generated by tabledef (tsql) */"}
}

func (r *tsqlRenderer) RenderTable(meta TableMetadata, groups []tabledef.IndexGroup) []string {
	if len(meta.Columns) == 0 {
		return nil
	}

	schema := meta.Schema
	if schema == "" {
		schema = meta.Table.Library
	}
	qualified := fmt.Sprintf("[%s].[%s]", schema, meta.Table.Name)

	// drop guard is keyed on the table name only
	lines := []string{
		fmt.Sprintf("if exists (select * from sysobjects where name = '%s' and xtype = 'U')", meta.Table.Name),
		fmt.Sprintf("  drop table [%s]", meta.Table.Name),
		"GO",
	}

	lines = append(lines,
		fmt.Sprintf("create %s %s", createKeyword(meta.Table.Kind), qualified),
		"(",
	)
	for i, column := range meta.Columns {
		prefix := "  "
		if i > 0 {
			prefix = " ,"
		}
		lines = append(lines, prefix+r.columnClause(column))
	}
	// only primary-key candidates are rendered in this dialect
	for _, group := range groups {
		if !group.PrimaryKey {
			continue
		}
		lines = append(lines, fmt.Sprintf(" ,constraint [%s] PRIMARY KEY (%s)",
			group.Name, strings.Join(group.Columns, ",")))
	}
	lines = append(lines, ")", "GO")

	for _, column := range meta.Columns {
		if column.Label == "" {
			continue
		}
		lines = append(lines, r.labelStatement(schema, meta.Table.Name, column)...)
	}

	return lines
}

func (r *tsqlRenderer) columnClause(column tabledef.ColumnDef) string {
	clause := fmt.Sprintf("[%s] %s", column.Name, MapTSQLType(column))
	if !column.Nullable {
		clause += " not null"
	}
	return clause
}

func (r *tsqlRenderer) labelStatement(schema, table string, column tabledef.ColumnDef) []string {
	return []string{
		fmt.Sprintf("exec sp_addextendedproperty @name = N'MS_Description', @value = N'%s',",
			escapeSingleQuotes(column.Label)),
		fmt.Sprintf("  @level0type = N'SCHEMA', @level0name = N'%s',", schema),
		fmt.Sprintf("  @level1type = N'TABLE', @level1name = N'%s',", table),
		fmt.Sprintf("  @level2type = N'COLUMN', @level2name = N'%s'", column.Name),
		"GO",
	}
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
