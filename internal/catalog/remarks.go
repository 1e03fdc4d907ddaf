package catalog

import (
	"strconv"

	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Remarks is the grade remark review screen.
func Remarks() Entity[models.Remark] {
	return Entity[models.Remark]{
		Name: "remarks",
		Path: "/remarks",
		Table: table.Config[models.Remark]{
			ID: func(r models.Remark) string { return r.ID },
			Search: []func(models.Remark) string{
				func(r models.Remark) string { return r.StudentName },
				func(r models.Remark) string { return r.CourseCode },
				func(r models.Remark) string { return r.Note },
			},
			Dimensions: map[string]func(models.Remark) string{
				"outcome": func(r models.Remark) string { return r.Outcome },
				"termId":  func(r models.Remark) string { return r.TermID },
			},
			SortKeys: map[string]table.SortKey[models.Remark]{
				"studentName": {String: func(r models.Remark) string { return r.StudentName }, Fold: true},
				"courseCode":  {String: func(r models.Remark) string { return r.CourseCode }},
				"score":       {Number: func(r models.Remark) float64 { return r.Score }},
				"outcome":     {String: func(r models.Remark) string { return r.Outcome }},
			},
			DefaultSortKey: "studentName",
			PageSize:       20,
			SelectAll:      table.SelectFiltered,
		},
		Columns: []export.Column[models.Remark]{
			{Header: "Student", Value: func(r models.Remark) string { return r.StudentName }},
			{Header: "Course", Value: func(r models.Remark) string { return r.CourseCode }},
			{Header: "Score", Value: func(r models.Remark) string { return strconv.FormatFloat(r.Score, 'f', 2, 64) }},
			{Header: "Outcome", Value: func(r models.Remark) string { return r.Outcome }},
			{Header: "Note", Value: func(r models.Remark) string { return r.Note }},
			{Header: "Recorded By", Value: func(r models.Remark) string { return r.RecordedBy }},
			{Header: "Recorded At", Value: func(r models.Remark) string { return formatDate(r.CreatedAt) }},
		},
	}
}
