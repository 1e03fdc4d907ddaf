package table

import "sort"

// Selection tracks the record IDs currently picked for bulk actions.
type Selection map[string]struct{}

// NewSelection builds a selection containing the given IDs.
func NewSelection(ids ...string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Toggle flips membership of id.
func (s Selection) Toggle(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Has reports membership of id.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// SelectAll implements the header checkbox: if the selection already equals
// ids exactly it clears, otherwise it becomes exactly ids. Two invocations
// with the same ids round-trip to empty.
func (s *Selection) SelectAll(ids []string) {
	if s.AllSelected(ids) {
		*s = Selection{}
		return
	}
	*s = NewSelection(ids...)
}

// AllSelected reports whether the selection is non-empty and equals ids as
// a set.
func (s Selection) AllSelected(ids []string) bool {
	if len(s) == 0 || len(s) != len(uniq(ids)) {
		return false
	}
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// Intersect drops every ID not present in ids. Called whenever the filtered
// set changes so the selection never references invisible records.
func (s Selection) Intersect(ids []string) {
	keep := NewSelection(ids...)
	for id := range s {
		if !keep.Has(id) {
			delete(s, id)
		}
	}
}

// IDs returns the selected IDs in lexicographic order for deterministic
// serialization.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
