package catalog

import (
	"strconv"

	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Coaches is the adviser roster screen.
func Coaches() Entity[models.Coach] {
	return Entity[models.Coach]{
		Name: "coaches",
		Path: "/coaches",
		Table: table.Config[models.Coach]{
			ID: func(c models.Coach) string { return c.ID },
			Search: []func(models.Coach) string{
				func(c models.Coach) string { return c.FullName() },
				func(c models.Coach) string { return c.Email },
				func(c models.Coach) string { return c.Department },
			},
			Dimensions: map[string]func(models.Coach) string{
				"department": func(c models.Coach) string { return c.Department },
			},
			SortKeys: map[string]table.SortKey[models.Coach]{
				"lastName":    {String: func(c models.Coach) string { return c.LastName }, Fold: true},
				"fullName":    {String: func(c models.Coach) string { return c.FullName() }, Fold: true},
				"department":  {String: func(c models.Coach) string { return c.Department }, Fold: true},
				"maxAdvisees": {Number: func(c models.Coach) float64 { return float64(c.MaxAdvisees) }},
			},
			DefaultSortKey: "lastName",
			PageSize:       10,
			SelectAll:      table.SelectFiltered,
		},
		Columns: []export.Column[models.Coach]{
			{Header: "Name", Value: func(c models.Coach) string { return c.FullName() }},
			{Header: "Email", Value: func(c models.Coach) string { return c.Email }},
			{Header: "Department", Value: func(c models.Coach) string { return c.Department }},
			{Header: "Max Advisees", Value: func(c models.Coach) string { return strconv.Itoa(c.MaxAdvisees) }},
			{Header: "Active", Value: func(c models.Coach) string { return formatBool(c.Active) }},
		},
	}
}
