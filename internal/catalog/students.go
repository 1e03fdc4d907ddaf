package catalog

import (
	"strings"

	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Students is the advisee roster screen. Select-all spans the whole
// filtered set so coaches can export every matching advisee at once.
func Students() Entity[models.Student] {
	return Entity[models.Student]{
		Name: "students",
		Path: "/students",
		Table: table.Config[models.Student]{
			ID: func(s models.Student) string { return s.ID },
			Search: []func(models.Student) string{
				func(s models.Student) string { return s.StudentNumber },
				func(s models.Student) string { return s.FullName() },
				func(s models.Student) string { return s.Email },
			},
			Dimensions: map[string]func(models.Student) string{
				"yearLevel":    func(s models.Student) string { return s.YearLevel },
				"curriculumId": func(s models.Student) string { return s.CurriculumID },
				"coachId":      func(s models.Student) string { return s.CoachID },
			},
			SortKeys: map[string]table.SortKey[models.Student]{
				"studentNumber": {String: func(s models.Student) string { return s.StudentNumber }},
				"lastName":      {String: func(s models.Student) string { return s.LastName }, Fold: true},
				"fullName":      {String: func(s models.Student) string { return s.FullName() }, Fold: true},
				"email":         {String: func(s models.Student) string { return strings.ToLower(s.Email) }},
				"yearLevel":     {String: func(s models.Student) string { return s.YearLevel }},
			},
			DefaultSortKey: "lastName",
			PageSize:       10,
			SelectAll:      table.SelectFiltered,
		},
		Columns: []export.Column[models.Student]{
			{Header: "Student Number", Value: func(s models.Student) string { return s.StudentNumber }},
			{Header: "Name", Value: func(s models.Student) string { return s.FullName() }},
			{Header: "Email", Value: func(s models.Student) string { return s.Email }},
			{Header: "Year Level", Value: func(s models.Student) string { return s.YearLevel }},
			{Header: "Curriculum", Value: func(s models.Student) string { return s.CurriculumName }},
			{Header: "Coach", Value: func(s models.Student) string { return s.CoachName }},
			{Header: "Active", Value: func(s models.Student) string { return formatBool(s.Active) }},
		},
	}
}
