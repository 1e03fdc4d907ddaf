// Package table is the shared engine behind every list screen in the
// dashboard: filter predicate evaluation, comparator-based stable sorting,
// pagination windowing and selection tracking over an in-memory dataset.
// Each entity screen supplies a Config describing its searchable fields,
// filter dimensions, sort keys and export behaviour; the engine itself is
// entirely generic over the record type.
package table

// Direction controls sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// All is the sentinel dimension value meaning "no constraint". An empty
// string is treated the same way.
const All = "ALL"

// SelectScope determines which ID set a select-all gesture targets.
type SelectScope string

const (
	// SelectFiltered selects every record matching the active filters,
	// across pages. Used by screens with cross-page bulk export.
	SelectFiltered SelectScope = "filtered"
	// SelectPage limits select-all to the currently visible page.
	SelectPage SelectScope = "page"
)

// SortKey defines one named ordering. Exactly one of String or Number is
// set. Derived keys (full name) and nested keys (course subject) are plain
// accessors composed by the caller. Fold makes string comparison
// case-insensitive.
type SortKey[R any] struct {
	String func(R) string
	Number func(R) float64
	Fold   bool
}

// Config describes how the engine treats one record type.
type Config[R any] struct {
	// ID extracts the stable unique identifier of a record.
	ID func(R) string

	// Search lists the fields matched by the free-text query.
	Search []func(R) string

	// Dimensions maps filter names to exact-match accessors.
	Dimensions map[string]func(R) string

	// SortKeys maps sort key names to orderings.
	SortKeys map[string]SortKey[R]

	// DefaultSortKey is used when no key, or an unknown key, is requested.
	DefaultSortKey string

	// PageSize is the fixed rows-per-page for this screen.
	PageSize int

	// SelectAll scopes the select-all gesture; zero value means filtered.
	SelectAll SelectScope
}

// Filters is the active filter state for one view: a free-text query plus
// exact-match dimension values. Absent dimensions and the All sentinel are
// both "no constraint".
type Filters struct {
	Query      string            `json:"query"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
}

// Active reports whether any constraint is set.
func (f Filters) Active() bool {
	if f.Query != "" {
		return true
	}
	for _, v := range f.Dimensions {
		if !isSentinel(v) {
			return true
		}
	}
	return false
}

func isSentinel(v string) bool {
	return v == "" || v == All
}
