package catalog

import (
	"strconv"

	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Enrollments is the per-term enrollment screen. Select-all is limited to
// the visible page because advisers act on enrollments one page at a time.
func Enrollments() Entity[models.Enrollment] {
	return Entity[models.Enrollment]{
		Name: "enrollments",
		Path: "/enrollments",
		Table: table.Config[models.Enrollment]{
			ID: func(e models.Enrollment) string { return e.ID },
			Search: []func(models.Enrollment) string{
				func(e models.Enrollment) string { return e.StudentNumber },
				func(e models.Enrollment) string { return e.StudentName },
				func(e models.Enrollment) string { return e.Course.Code },
				func(e models.Enrollment) string { return e.Course.Title },
			},
			Dimensions: map[string]func(models.Enrollment) string{
				"status": func(e models.Enrollment) string { return e.Status },
				"termId": func(e models.Enrollment) string { return e.TermID },
			},
			SortKeys: map[string]table.SortKey[models.Enrollment]{
				"studentName":   {String: func(e models.Enrollment) string { return e.StudentName }, Fold: true},
				"courseSubject": {String: func(e models.Enrollment) string { return e.Course.Subject }, Fold: true},
				"courseCode":    {String: func(e models.Enrollment) string { return e.Course.Code }},
				"grade":         {Number: models.Enrollment.GradeValue},
				"status":        {String: func(e models.Enrollment) string { return e.Status }},
			},
			DefaultSortKey: "studentName",
			PageSize:       20,
			SelectAll:      table.SelectPage,
		},
		Columns: []export.Column[models.Enrollment]{
			{Header: "Student Number", Value: func(e models.Enrollment) string { return e.StudentNumber }},
			{Header: "Student", Value: func(e models.Enrollment) string { return e.StudentName }},
			{Header: "Course", Value: func(e models.Enrollment) string { return e.Course.Code }},
			{Header: "Title", Value: func(e models.Enrollment) string { return e.Course.Title }},
			{Header: "Term", Value: func(e models.Enrollment) string { return e.TermName }},
			{Header: "Status", Value: func(e models.Enrollment) string { return e.Status }},
			{Header: "Grade", Value: func(e models.Enrollment) string {
				if e.Grade == nil {
					return ""
				}
				return strconv.FormatFloat(*e.Grade, 'f', 2, 64)
			}},
		},
	}
}
