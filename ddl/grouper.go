package ddl

import (
	"fmt"
	"sort"
	"strings"

	tabledef "github.com/sonohara/tabledef"
)

// GroupIndexes folds raw index-membership records into per-index groups.
// Entries are sorted by (usage, index name, position) first so records for one
// index are contiguous; first-seen index order after sorting is preserved in
// the result. A duplicate (index, position) pair is a malformed catalog and is
// tolerated: the later record wins.
//
// A group is a primary-key candidate when it is unique and no member column
// allows missing values.
func GroupIndexes(entries []tabledef.IndexEntry) []tabledef.IndexGroup {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]tabledef.IndexEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Usage != b.Usage {
			return a.Usage < b.Usage
		}
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.Position < b.Position
	})

	var groups []tabledef.IndexGroup
	var positions []int // member positions of the group under construction

	for _, entry := range sorted {
		if len(groups) == 0 || groups[len(groups)-1].Name != entry.Index {
			groups = append(groups, tabledef.IndexGroup{
				Name:       entry.Index,
				Unique:     entry.Unique,
				PrimaryKey: entry.Unique && entry.NoMissing,
				Columns:    []string{entry.Column},
			})
			positions = append(positions[:0], entry.Position)
			continue
		}

		group := &groups[len(groups)-1]
		if last := len(positions) - 1; positions[last] == entry.Position {
			// duplicate position, later record wins
			group.Columns[last] = entry.Column
		} else {
			group.Columns = append(group.Columns, entry.Column)
			positions = append(positions, entry.Position)
		}
		if !entry.Unique {
			group.Unique = false
			group.PrimaryKey = false
		}
		if !entry.NoMissing {
			group.PrimaryKey = false
		}
	}

	return groups
}

// ValidateIndexes reports index members that reference columns absent from the
// table's column sequence. The groups themselves are left untouched so
// rendering proceeds best-effort; callers log the returned errors as warnings.
func ValidateIndexes(columns []tabledef.ColumnDef, groups []tabledef.IndexGroup) []error {
	known := make(map[string]bool, len(columns))
	for _, column := range columns {
		known[strings.ToLower(column.Name)] = true
	}

	var errs []error
	for _, group := range groups {
		for _, member := range group.Columns {
			if !known[strings.ToLower(member)] {
				errs = append(errs, fmt.Errorf("%w: index %q references unknown column %q",
					tabledef.ErrMalformedIndexMetadata, group.Name, member))
			}
		}
	}

	return errs
}
