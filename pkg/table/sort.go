package table

import (
	"cmp"
	"slices"
	"strings"
)

// Comparator builds a two-argument comparison for the named sort key.
// Unknown keys fall back to the default key; a config with no usable key
// yields a comparator that treats everything as equal, which a stable sort
// turns into "keep input order". Descending is the exact sign flip of
// ascending, so the two directions are reverse orderings of each other.
func (c Config[R]) Comparator(key string, dir Direction) func(a, b R) int {
	sk, ok := c.SortKeys[key]
	if !ok {
		sk, ok = c.SortKeys[c.DefaultSortKey]
	}
	if !ok {
		return func(a, b R) int { return 0 }
	}

	base := func(a, b R) int { return 0 }
	switch {
	case sk.Number != nil:
		base = func(a, b R) int { return cmp.Compare(sk.Number(a), sk.Number(b)) }
	case sk.String != nil && sk.Fold:
		base = func(a, b R) int {
			return strings.Compare(strings.ToLower(sk.String(a)), strings.ToLower(sk.String(b)))
		}
	case sk.String != nil:
		base = func(a, b R) int { return strings.Compare(sk.String(a), sk.String(b)) }
	}

	if dir == Descending {
		return func(a, b R) int { return -base(a, b) }
	}
	return base
}

// Sort returns a sorted copy of records. The sort is stable: records with
// equal keys keep their relative input order in both directions.
func (c Config[R]) Sort(records []R, key string, dir Direction) []R {
	out := make([]R, len(records))
	copy(out, records)
	slices.SortStableFunc(out, c.Comparator(key, dir))
	return out
}
