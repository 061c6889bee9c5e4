package ddl

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	tabledef "github.com/sonohara/tabledef"
)

func TestClassifyPostgreSQLType(t *testing.T) {
	testCases := []struct {
		dataType  string
		maxLength int
		kind      tabledef.ColumnKind
		length    int
		format    string
	}{
		{"integer", 0, tabledef.ColumnNumeric, 8, ""},
		{"numeric", 0, tabledef.ColumnNumeric, 8, ""},
		{"double precision", 0, tabledef.ColumnNumeric, 8, ""},
		{"character varying", 40, tabledef.ColumnCharacter, 40, ""},
		{"character", 2, tabledef.ColumnCharacter, 2, ""},
		{"text", 0, tabledef.ColumnCharacter, 255, ""},
		{"uuid", 0, tabledef.ColumnCharacter, 255, ""},
		{"timestamp with time zone", 0, tabledef.ColumnNumeric, 8, "DATETIME19."},
		{"timestamp without time zone", 0, tabledef.ColumnNumeric, 8, "DATETIME19."},
		{"date", 0, tabledef.ColumnNumeric, 8, "DATETIME19."},
		{"time without time zone", 0, tabledef.ColumnNumeric, 8, "DATETIME19."},
	}

	for _, tc := range testCases {
		kind, length, format := classifyPostgreSQLType(tc.dataType, tc.maxLength)
		assert.Equal(t, tc.kind, kind, "kind of %q", tc.dataType)
		assert.Equal(t, tc.length, length, "length of %q", tc.dataType)
		assert.Equal(t, tc.format, format, "format of %q", tc.dataType)
	}
}
