package ddl

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	tabledef "github.com/sonohara/tabledef"
)

func TestMapTSQLType(t *testing.T) {
	testCases := []struct {
		name     string
		column   tabledef.ColumnDef
		expected string
	}{
		{"NumericBecomesDecimal", tabledef.ColumnDef{Kind: tabledef.ColumnNumeric, Length: 8}, TSQLDecimal},
		{"CharacterSizedToLength", tabledef.ColumnDef{Kind: tabledef.ColumnCharacter, Length: 4}, "varchar(4)"},
		{"ZeroLengthCharacterGetsMinimumSize", tabledef.ColumnDef{Kind: tabledef.ColumnCharacter}, "varchar(1)"},
		{"DatetimeFormatWins", tabledef.ColumnDef{Kind: tabledef.ColumnNumeric, Format: "DATETIME19."}, TSQLDateTime},
		{"DatetimeFormatCaseInsensitive", tabledef.ColumnDef{Kind: tabledef.ColumnNumeric, Format: "datetime20."}, TSQLDateTime},
		{"DatetimeFormatOnCharacter", tabledef.ColumnDef{Kind: tabledef.ColumnCharacter, Length: 20, Format: "DATETIME19."}, TSQLDateTime},
		{"NonDatetimeFormatIgnored", tabledef.ColumnDef{Kind: tabledef.ColumnNumeric, Format: "BEST12."}, TSQLDecimal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapTSQLType(tc.column))
		})
	}
}
