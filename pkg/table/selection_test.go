package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggleIdempotence(t *testing.T) {
	s := NewSelection("a", "b")

	s.Toggle("c")
	assert.True(t, s.Has("c"))
	s.Toggle("c")
	assert.False(t, s.Has("c"))
	assert.Equal(t, []string{"a", "b"}, s.IDs())
}

func TestSelectAllRoundTripsToEmpty(t *testing.T) {
	visible := []string{"1", "2", "3"}
	s := NewSelection()

	s.SelectAll(visible)
	assert.Equal(t, []string{"1", "2", "3"}, s.IDs())
	assert.True(t, s.AllSelected(visible))

	s.SelectAll(visible)
	assert.Empty(t, s.IDs())
}

func TestSelectAllReplacesPartialSelection(t *testing.T) {
	s := NewSelection("1", "9")
	s.SelectAll([]string{"1", "2", "3"})
	assert.Equal(t, []string{"1", "2", "3"}, s.IDs())
}

func TestAllSelectedEmptySelectionIsFalse(t *testing.T) {
	s := NewSelection()
	assert.False(t, s.AllSelected([]string{"1"}))
	assert.False(t, s.AllSelected(nil))
}

func TestAllSelectedIgnoresDuplicateIDs(t *testing.T) {
	s := NewSelection("1", "2")
	assert.True(t, s.AllSelected([]string{"1", "2", "2"}))
}

func TestIntersectDropsHiddenRecords(t *testing.T) {
	// Selection {1,2,3} against a filtered view of {2,3,4} keeps {2,3}.
	s := NewSelection("1", "2", "3")
	s.Intersect([]string{"2", "3", "4"})
	assert.Equal(t, []string{"2", "3"}, s.IDs())
}
