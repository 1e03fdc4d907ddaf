package export

import (
	"fmt"
	"strings"
	"time"
)

// Content types served with downloads.
const (
	CSVContentType = "text/csv; charset=utf-8"
	PDFContentType = "application/pdf"
)

// Column pairs a header with the accessor producing its cell value.
type Column[R any] struct {
	Header string
	Value  func(R) string
}

// BuildDataset projects records through a column specification, preserving
// input order. The engine already sorted the records; exports never
// re-sort.
func BuildDataset[R any](records []R, columns []Column[R]) Dataset {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.Value(r)
		}
		rows = append(rows, row)
	}
	return Dataset{Headers: headers, Rows: rows}
}

// Filename builds a timestamped download name like students_20260901_1504.csv.
func Filename(entity, format string) string {
	stamp := time.Now().UTC().Format("20060102_1504")
	return fmt.Sprintf("%s_%s.%s", sanitize(entity), stamp, format)
}

func sanitize(raw string) string {
	if raw == "" {
		return "export"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return strings.ToLower(replacer.Replace(raw))
}
