// Package tableview implements the controller behind every list screen:
// it owns a fetched dataset snapshot plus the filter, sort, page and
// selection state of one view session, and re-derives the visible rows on
// every change. Sessions live in Redis so the HTTP surface stays
// stateless.
package tableview

import (
	"time"

	"github.com/campus-tools/advising-admin/pkg/table"
)

// State is the persisted, engine-independent state of one view session.
type State struct {
	Entity    string          `json:"entity"`
	Filters   table.Filters   `json:"filters"`
	SortKey   string          `json:"sort_key"`
	SortDir   table.Direction `json:"sort_dir"`
	Page      int             `json:"page"`
	PageSize  int             `json:"page_size"`
	Selected  []string        `json:"selected,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Params carries the state mutations requested by one rows call. Nil
// fields leave the corresponding state untouched.
type Params struct {
	Query      *string
	Dimensions map[string]string
	SortKey    *string
	SortDir    *table.Direction
	Page       *int
}

// ExportScope selects which rows an export covers.
type ExportScope string

const (
	// ScopeFiltered exports the whole filtered set, across pages.
	ScopeFiltered ExportScope = "filtered"
	// ScopeSelected exports only the currently selected rows.
	ScopeSelected ExportScope = "selected"
)

// ExportFormat selects the rendered download format.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)
