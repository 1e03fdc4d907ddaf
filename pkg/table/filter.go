package table

import "strings"

// Matches reports whether a record satisfies every active filter dimension.
// The text query matches case-insensitively against any configured search
// field; dimension values match exactly against their accessor. Unknown
// dimension names and sentinel values never exclude a record.
func (c Config[R]) Matches(r R, f Filters) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		if !c.matchesQuery(r, q) {
			return false
		}
	}

	for name, want := range f.Dimensions {
		if isSentinel(want) {
			continue
		}
		accessor, ok := c.Dimensions[name]
		if !ok {
			// Malformed filter names are a no-op, not an error.
			continue
		}
		if accessor(r) != want {
			return false
		}
	}

	return true
}

func (c Config[R]) matchesQuery(r R, query string) bool {
	folded := strings.ToLower(query)
	for _, field := range c.Search {
		if strings.Contains(strings.ToLower(field(r)), folded) {
			return true
		}
	}
	return false
}

// Filter returns the records matching the active filters, preserving input
// order. The input slice is never mutated.
func (c Config[R]) Filter(records []R, f Filters) []R {
	if !f.Active() {
		out := make([]R, len(records))
		copy(out, records)
		return out
	}
	out := make([]R, 0, len(records))
	for _, r := range records {
		if c.Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}
