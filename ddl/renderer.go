package ddl

import (
	"fmt"

	tabledef "github.com/sonohara/tabledef"
)

// Renderer produces DDL text lines for one dialect. Implementations are pure:
// they perform no I/O and return byte-identical lines for identical input.
type Renderer interface {
	// Header returns the comment lines emitted once per run, before any table.
	Header() []string

	// RenderTable returns the ordered DDL lines for one table. A table with
	// zero columns renders nothing. Missing optional attributes (format,
	// label) never cause a failure; they are simply absent from the output.
	RenderTable(meta TableMetadata, groups []tabledef.IndexGroup) []string
}

// NewRenderer returns the renderer for the requested dialect. An empty dialect
// selects native output.
func NewRenderer(dialect tabledef.Dialect) (Renderer, error) {
	switch dialect {
	case tabledef.DialectNative, "":
		return &nativeRenderer{}, nil
	case tabledef.DialectTSQL:
		return &tsqlRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", tabledef.ErrUnsupportedDialect, dialect)
	}
}

func createKeyword(kind tabledef.TableKind) string {
	if kind == tabledef.KindView {
		return "view"
	}
	return "table"
}
