package ddl

import (
	"fmt"
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// nativeRenderer mirrors the catalog attributes directly: the column type name
// passes through verbatim and length/format/label become explicit attributes.
type nativeRenderer struct{}

func (r *nativeRenderer) Header() []string {
	return []string{"/* DDL generated by tabledef (native) */"}
}

func (r *nativeRenderer) RenderTable(meta TableMetadata, groups []tabledef.IndexGroup) []string {
	if len(meta.Columns) == 0 {
		return nil
	}

	qualified := meta.Table.Library + "." + meta.Table.Name

	lines := []string{
		fmt.Sprintf("create %s %s", createKeyword(meta.Table.Kind), qualified),
		"(",
	}
	for i, column := range meta.Columns {
		prefix := "  "
		if i > 0 {
			prefix = " ,"
		}
		lines = append(lines, prefix+r.columnClause(column))
	}
	lines = append(lines, ");")

	for _, group := range groups {
		lines = append(lines, r.indexStatement(qualified, group))
	}

	return lines
}

func (r *nativeRenderer) columnClause(column tabledef.ColumnDef) string {
	var b strings.Builder
	b.WriteString(column.Name)
	b.WriteString(" ")
	b.WriteString(column.Kind.String())
	fmt.Fprintf(&b, " length=%d", column.Length)
	// single-character formats carry no information
	if len(column.Format) > 1 {
		fmt.Fprintf(&b, " format=%s", column.Format)
	}
	if !column.Nullable {
		b.WriteString(" not null")
	}
	if column.Label != "" {
		fmt.Fprintf(&b, " label=%q", column.Label)
	}
	return b.String()
}

func (r *nativeRenderer) indexStatement(qualified string, group tabledef.IndexGroup) string {
	unique := ""
	if group.Unique {
		unique = "unique "
	}
	return fmt.Sprintf("create %sindex %s on %s (%s);",
		unique, group.Name, qualified, strings.Join(group.Columns, ","))
}
