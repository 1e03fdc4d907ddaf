package catalog

import (
	"strconv"

	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Curricula is the program-of-study screen.
func Curricula() Entity[models.Curriculum] {
	return Entity[models.Curriculum]{
		Name: "curricula",
		Path: "/curricula",
		Table: table.Config[models.Curriculum]{
			ID: func(c models.Curriculum) string { return c.ID },
			Search: []func(models.Curriculum) string{
				func(c models.Curriculum) string { return c.Code },
				func(c models.Curriculum) string { return c.Name },
				func(c models.Curriculum) string { return c.Major },
			},
			Dimensions: map[string]func(models.Curriculum) string{
				"major": func(c models.Curriculum) string { return c.Major },
				"effectiveYear": func(c models.Curriculum) string {
					return strconv.Itoa(c.EffectiveYear)
				},
			},
			SortKeys: map[string]table.SortKey[models.Curriculum]{
				"code":          {String: func(c models.Curriculum) string { return c.Code }},
				"name":          {String: func(c models.Curriculum) string { return c.Name }, Fold: true},
				"effectiveYear": {Number: func(c models.Curriculum) float64 { return float64(c.EffectiveYear) }},
				"totalUnits":    {Number: func(c models.Curriculum) float64 { return c.TotalUnits }},
			},
			DefaultSortKey: "code",
			PageSize:       10,
			SelectAll:      table.SelectFiltered,
		},
		Columns: []export.Column[models.Curriculum]{
			{Header: "Code", Value: func(c models.Curriculum) string { return c.Code }},
			{Header: "Name", Value: func(c models.Curriculum) string { return c.Name }},
			{Header: "Major", Value: func(c models.Curriculum) string { return c.Major }},
			{Header: "Effective Year", Value: func(c models.Curriculum) string { return strconv.Itoa(c.EffectiveYear) }},
			{Header: "Total Units", Value: func(c models.Curriculum) string { return formatUnits(c.TotalUnits) }},
			{Header: "Active", Value: func(c models.Curriculum) string { return formatBool(c.Active) }},
		},
	}
}
