package catalog

import (
	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Courses is the curriculum course list screen.
func Courses() Entity[models.Course] {
	return Entity[models.Course]{
		Name: "courses",
		Path: "/courses",
		Table: table.Config[models.Course]{
			ID: func(c models.Course) string { return c.ID },
			Search: []func(models.Course) string{
				func(c models.Course) string { return c.Code },
				func(c models.Course) string { return c.Subject },
				func(c models.Course) string { return c.Title },
			},
			Dimensions: map[string]func(models.Course) string{
				"yearLevel":    func(c models.Course) string { return c.YearLevel },
				"semester":     func(c models.Course) string { return c.Semester },
				"curriculumId": func(c models.Course) string { return c.CurriculumID },
			},
			SortKeys: map[string]table.SortKey[models.Course]{
				"code":    {String: func(c models.Course) string { return c.Code }},
				"subject": {String: func(c models.Course) string { return c.Subject }, Fold: true},
				"title":   {String: func(c models.Course) string { return c.Title }, Fold: true},
				"units":   {Number: func(c models.Course) float64 { return c.Units }},
			},
			DefaultSortKey: "code",
			PageSize:       15,
			SelectAll:      table.SelectFiltered,
		},
		Columns: []export.Column[models.Course]{
			{Header: "Code", Value: func(c models.Course) string { return c.Code }},
			{Header: "Subject", Value: func(c models.Course) string { return c.Subject }},
			{Header: "Title", Value: func(c models.Course) string { return c.Title }},
			{Header: "Units", Value: func(c models.Course) string { return formatUnits(c.Units) }},
			{Header: "Year Level", Value: func(c models.Course) string { return c.YearLevel }},
			{Header: "Semester", Value: func(c models.Course) string { return c.Semester }},
		},
	}
}
