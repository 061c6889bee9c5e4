package tabledef

// TableKind distinguishes base tables from views
type TableKind string

const (
	KindTable TableKind = "table"
	KindView  TableKind = "view"
)

// ColumnKind is the catalog-level data type of a column. The catalog model knows
// only two kinds; dialect-specific types are derived by the renderers.
type ColumnKind string

const (
	ColumnNumeric   ColumnKind = "num"
	ColumnCharacter ColumnKind = "char"
)

// String returns the catalog type name as stored in the metadata source
func (k ColumnKind) String() string {
	return string(k)
}

// TableDef identifies a single table or view within a library.
// Instances are immutable snapshots built once per run.
type TableDef struct {
	Library string    `json:"library" yaml:"library"`
	Name    string    `json:"name" yaml:"name"`
	Kind    TableKind `json:"kind" yaml:"kind"`
}

// ColumnDef is a unified column definition shared by all catalogs and renderers
type ColumnDef struct {
	Name     string     `json:"name" yaml:"name"`                           // Column name, unique within a table
	Kind     ColumnKind `json:"kind" yaml:"kind"`                           // Catalog data type
	Length   int        `json:"length" yaml:"length"`                       // Declared length in bytes/chars
	Format   string     `json:"format,omitempty" yaml:"format,omitempty"`   // Display format (optional)
	Label    string     `json:"label,omitempty" yaml:"label,omitempty"`     // Descriptive label (optional)
	Nullable bool       `json:"nullable" yaml:"nullable"`                   // Is nullable
	Position int        `json:"position" yaml:"position"`                   // Ordinal position, 1-based
}

// IndexEntry is one raw index-membership record from the catalog. Entries for the
// same index name are contiguous once sorted by (usage, index name, position).
type IndexEntry struct {
	Index     string `json:"index" yaml:"index"`           // Index name
	Column    string `json:"column" yaml:"column"`         // Member column name
	Position  int    `json:"position" yaml:"position"`     // Position within the index, 1-based
	Usage     string `json:"usage,omitempty" yaml:"usage,omitempty"`
	Unique    bool   `json:"unique" yaml:"unique"`
	NoMissing bool   `json:"noMissing" yaml:"no_missing"` // No missing values on this member
}

// IndexGroup is the derived per-index view: all membership records sharing one
// index name, folded in member order.
type IndexGroup struct {
	Name       string   `json:"name" yaml:"name"`
	Unique     bool     `json:"unique" yaml:"unique"`
	Columns    []string `json:"columns" yaml:"columns"`
	PrimaryKey bool     `json:"primaryKey" yaml:"primary_key"` // Unique and no member allows missing values
}
