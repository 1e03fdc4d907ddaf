// Package catalog declares one descriptor per entity screen. A descriptor
// is the entire difference between two list screens: searchable fields,
// filter dimensions, sort keys, page size, select-all scope, export
// columns and the upstream collection path. Everything else is shared
// engine and controller code.
package catalog

import (
	"strconv"
	"time"

	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Entity bundles what one list screen needs.
type Entity[R any] struct {
	// Name is the route segment, audit resource and export filename stem.
	Name string
	// Path is the upstream advising API collection path.
	Path string
	// Table drives filtering, sorting, paging and selection.
	Table table.Config[R]
	// Columns define the CSV/PDF export projection.
	Columns []export.Column[R]
}

func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
