package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/pkg/table"
)

func TestDescriptorsAreInternallyConsistent(t *testing.T) {
	check := func(t *testing.T, name, path, defaultKey string, sortKeys map[string]bool, columns int) {
		t.Helper()
		assert.NotEmpty(t, name)
		assert.NotEmpty(t, path)
		assert.True(t, sortKeys[defaultKey], "default sort key %q must be declared", defaultKey)
		assert.Greater(t, columns, 0)
	}

	students := Students()
	keys := map[string]bool{}
	for k := range students.Table.SortKeys {
		keys[k] = true
	}
	check(t, students.Name, students.Path, students.Table.DefaultSortKey, keys, len(students.Columns))

	enrollments := Enrollments()
	keys = map[string]bool{}
	for k := range enrollments.Table.SortKeys {
		keys[k] = true
	}
	check(t, enrollments.Name, enrollments.Path, enrollments.Table.DefaultSortKey, keys, len(enrollments.Columns))

	for _, e := range []struct {
		name, path, def string
		sortKeys        int
	}{
		{Coaches().Name, Coaches().Path, Coaches().Table.DefaultSortKey, len(Coaches().Table.SortKeys)},
		{Courses().Name, Courses().Path, Courses().Table.DefaultSortKey, len(Courses().Table.SortKeys)},
		{Curricula().Name, Curricula().Path, Curricula().Table.DefaultSortKey, len(Curricula().Table.SortKeys)},
		{Remarks().Name, Remarks().Path, Remarks().Table.DefaultSortKey, len(Remarks().Table.SortKeys)},
		{Assignments().Name, Assignments().Path, Assignments().Table.DefaultSortKey, len(Assignments().Table.SortKeys)},
	} {
		assert.NotEmpty(t, e.name)
		assert.NotEmpty(t, e.def)
		assert.Greater(t, e.sortKeys, 0)
	}
}

func TestStudentsSortByLastNameFoldsCase(t *testing.T) {
	cfg := Students().Table
	records := []models.Student{
		{ID: "1", FirstName: "Ana", LastName: "delacruz"},
		{ID: "2", FirstName: "Ben", LastName: "Abad"},
		{ID: "3", FirstName: "Cid", LastName: "Cruz"},
	}

	sorted := cfg.Sort(records, "lastName", table.Ascending)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Abad", sorted[0].LastName)
	assert.Equal(t, "Cruz", sorted[1].LastName)
	assert.Equal(t, "delacruz", sorted[2].LastName)
}

func TestStudentsSearchMatchesDerivedFullName(t *testing.T) {
	cfg := Students().Table
	records := []models.Student{
		{ID: "1", FirstName: "Maria", LastName: "Santos"},
		{ID: "2", FirstName: "Jose", LastName: "Rizal"},
	}

	got := cfg.Filter(records, table.Filters{Query: "maria santos"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestEnrollmentsSortOnNestedCourseSubject(t *testing.T) {
	cfg := Enrollments().Table
	records := []models.Enrollment{
		{ID: "1", Course: models.Course{Subject: "Physics"}},
		{ID: "2", Course: models.Course{Subject: "algebra"}},
		{ID: "3", Course: models.Course{Subject: "Chemistry"}},
	}

	sorted := cfg.Sort(records, "courseSubject", table.Ascending)
	assert.Equal(t, "algebra", sorted[0].Course.Subject)
	assert.Equal(t, "Chemistry", sorted[1].Course.Subject)
	assert.Equal(t, "Physics", sorted[2].Course.Subject)
}

func TestEnrollmentsUngradedOrderFirstAscending(t *testing.T) {
	grade := 85.0
	cfg := Enrollments().Table
	records := []models.Enrollment{
		{ID: "1", Grade: &grade},
		{ID: "2"},
	}

	sorted := cfg.Sort(records, "grade", table.Ascending)
	assert.Equal(t, "2", sorted[0].ID)
	assert.Equal(t, "1", sorted[1].ID)
}
