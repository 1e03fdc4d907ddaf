package catalog

import (
	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Assignments is the coach-to-advisee assignment screen.
func Assignments() Entity[models.Assignment] {
	return Entity[models.Assignment]{
		Name: "assignments",
		Path: "/assignments",
		Table: table.Config[models.Assignment]{
			ID: func(a models.Assignment) string { return a.ID },
			Search: []func(models.Assignment) string{
				func(a models.Assignment) string { return a.CoachName },
				func(a models.Assignment) string { return a.StudentName },
			},
			Dimensions: map[string]func(models.Assignment) string{
				"coachId": func(a models.Assignment) string { return a.CoachID },
				"termId":  func(a models.Assignment) string { return a.TermID },
			},
			SortKeys: map[string]table.SortKey[models.Assignment]{
				"coachName":   {String: func(a models.Assignment) string { return a.CoachName }, Fold: true},
				"studentName": {String: func(a models.Assignment) string { return a.StudentName }, Fold: true},
			},
			DefaultSortKey: "coachName",
			PageSize:       20,
			SelectAll:      table.SelectFiltered,
		},
		Columns: []export.Column[models.Assignment]{
			{Header: "Coach", Value: func(a models.Assignment) string { return a.CoachName }},
			{Header: "Student", Value: func(a models.Assignment) string { return a.StudentName }},
			{Header: "Term", Value: func(a models.Assignment) string { return a.TermID }},
			{Header: "Note", Value: func(a models.Assignment) string { return a.Note }},
			{Header: "Assigned", Value: func(a models.Assignment) string { return formatDate(a.CreatedAt) }},
		},
	}
}
