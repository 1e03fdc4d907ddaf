package table

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortStringKeyAscending(t *testing.T) {
	cfg := adviseeConfig()
	got := cfg.Sort(fixtureAdvisees(), "lastName", Ascending)
	assert.Equal(t, []string{"s2", "s4", "s5", "s1", "s3"}, idsOf(got))
}

func TestSortDescendingIsExactReverseWhenKeysUnique(t *testing.T) {
	cfg := adviseeConfig()
	recs := []advisee{
		{ID: "a", Last: "Young"},
		{ID: "b", Last: "Adams"},
		{ID: "c", Last: "Miller"},
	}

	asc := cfg.Sort(recs, "lastName", Ascending)
	desc := cfg.Sort(recs, "lastName", Descending)

	reversed := make([]advisee, len(asc))
	copy(reversed, asc)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, desc)
}

func TestSortStabilityBothDirections(t *testing.T) {
	cfg := adviseeConfig()
	recs := fixtureAdvisees()

	// s2 and s4 tie on lastName (Cruz); s2 precedes s4 in the input and
	// must do so after sorting in either direction.
	for _, dir := range []Direction{Ascending, Descending} {
		got := idsOf(cfg.Sort(recs, "lastName", dir))
		assert.Less(t, slices.Index(got, "s2"), slices.Index(got, "s4"), "direction %s", dir)
	}
}

func TestSortNumberKey(t *testing.T) {
	cfg := adviseeConfig()
	got := cfg.Sort(fixtureAdvisees(), "units", Ascending)
	assert.Equal(t, []string{"s5", "s3", "s1", "s2", "s4"}, idsOf(got))

	desc := cfg.Sort(fixtureAdvisees(), "units", Descending)
	// s2 precedes s4 in the input; equal 21-unit keys stay in that order.
	assert.Equal(t, []string{"s2", "s4", "s1", "s3", "s5"}, idsOf(desc))
}

func TestSortDerivedKeyFoldsCase(t *testing.T) {
	cfg := adviseeConfig()
	recs := []advisee{
		{ID: "x", First: "zoe", Last: "abad"},
		{ID: "y", First: "Al", Last: "Zu"},
	}
	got := cfg.Sort(recs, "fullName", Ascending)
	assert.Equal(t, []string{"y", "x"}, idsOf(got))
}

func TestSortUnknownKeyFallsBackToDefault(t *testing.T) {
	cfg := adviseeConfig()
	got := cfg.Sort(fixtureAdvisees(), "noSuchKey", Ascending)
	assert.Equal(t, idsOf(cfg.Sort(fixtureAdvisees(), "lastName", Ascending)), idsOf(got))
}

func TestSortAbsentValuesOrderFirstAscending(t *testing.T) {
	cfg := adviseeConfig()
	recs := []advisee{
		{ID: "a", Last: "Cruz"},
		{ID: "b", Last: ""},
	}
	got := cfg.Sort(recs, "lastName", Ascending)
	require.Equal(t, "b", got[0].ID, "empty value sorts before non-empty ascending")
}

func TestSortNoUsableKeyKeepsInputOrder(t *testing.T) {
	cfg := Config[advisee]{ID: func(a advisee) string { return a.ID }}
	recs := fixtureAdvisees()
	got := cfg.Sort(recs, "anything", Descending)
	assert.Equal(t, idsOf(recs), idsOf(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	cfg := adviseeConfig()
	recs := fixtureAdvisees()
	_ = cfg.Sort(recs, "lastName", Descending)
	assert.Equal(t, fixtureAdvisees(), recs)
}
