package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateWindow(t *testing.T) {
	recs := manyAdvisees(25)

	w := Paginate(recs, 1, 10)
	assert.Equal(t, 3, w.TotalPages)
	assert.Equal(t, 1, w.Page)
	assert.Len(t, w.Visible, 10)
	assert.Equal(t, "s000", w.Visible[0].ID)

	w = Paginate(recs, 3, 10)
	assert.Len(t, w.Visible, 5)
	assert.Equal(t, "s020", w.Visible[0].ID)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	recs := manyAdvisees(25)

	low := Paginate(recs, 0, 10)
	assert.Equal(t, Paginate(recs, 1, 10), low)

	high := Paginate(recs, 99, 10)
	assert.Equal(t, Paginate(recs, 3, 10), high)
	assert.Equal(t, 3, high.Page)
}

func TestPaginateEmptyDataset(t *testing.T) {
	w := Paginate([]advisee{}, 5, 10)
	assert.Empty(t, w.Visible)
	assert.Equal(t, 1, w.TotalPages)
	assert.Equal(t, 1, w.Page)
}

func TestPaginateCoverage(t *testing.T) {
	// Concatenating every page reconstructs the dataset exactly once,
	// for any page size.
	recs := manyAdvisees(23)
	for size := 1; size <= 25; size++ {
		var rebuilt []advisee
		total := Paginate(recs, 1, size).TotalPages
		for page := 1; page <= total; page++ {
			rebuilt = append(rebuilt, Paginate(recs, page, size).Visible...)
		}
		require.Equal(t, recs, rebuilt, "page size %d", size)
	}
}

func TestPaginateDefaultsInvalidPageSize(t *testing.T) {
	recs := manyAdvisees(3)
	w := Paginate(recs, 2, 0)
	assert.Equal(t, 3, w.TotalPages)
	assert.Len(t, w.Visible, 1)
}

func TestPaginateTwelveStudentsScenario(t *testing.T) {
	// 12 records, filter leaves 3, page size 10: one page holding all 3.
	cfg := adviseeConfig()
	recs := manyAdvisees(12)
	recs[2].YearLevel = "SECOND"
	recs[7].YearLevel = "SECOND"
	recs[9].YearLevel = "SECOND"

	filtered := cfg.Filter(recs, Filters{Dimensions: map[string]string{"yearLevel": "SECOND"}})
	sorted := cfg.Sort(filtered, "lastName", Ascending)
	w := Paginate(sorted, 1, 10)

	require.Len(t, w.Visible, 3)
	assert.Equal(t, 1, w.TotalPages)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, []string{"s002", "s007", "s009"}, idsOf(w.Visible))
}
