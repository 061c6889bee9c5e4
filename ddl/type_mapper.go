package ddl

import (
	"fmt"
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// SQL Server target types. The catalog model has no native length/format
// concept on the SQL Server side, so types are inferred: datetime formats win
// over the numeric kind, numerics become a fixed-precision decimal and
// characters a varchar sized to the declared length.
const (
	TSQLDateTime = "datetime"
	TSQLDecimal  = "decimal(18,5)"
)

// MapTSQLType derives the SQL Server column type from a catalog column
func MapTSQLType(column tabledef.ColumnDef) string {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(column.Format)), "DATETIME") {
		return TSQLDateTime
	}
	if column.Kind == tabledef.ColumnNumeric {
		return TSQLDecimal
	}

	length := column.Length
	if length <= 0 {
		length = 1
	}
	return fmt.Sprintf("varchar(%d)", length)
}
