package counter

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Entry represents an element-count pair.
type Entry[E comparable, N constraints.Signed] struct {
	Element E
	Count   N
}

// MostCommon returns every entry of the counter, most frequent first.
// Elements with equal counts are ordered by the elements' own
// ascending order, so the result is fully deterministic for a given
// set of counts. The counter is not modified.
//
// MostCommon materializes and sorts the whole counter; for only the
// k most- or least-frequent elements, TopK and BottomK avoid the
// full sort. For insertion-order tie-breaking instead, see the
// ordered package.
func MostCommon[E constraints.Ordered, N constraints.Signed](ctr Counter[E, N]) []Entry[E, N] {
	out := make([]Entry[E, N], 0, len(ctr))

	for el, cnt := range ctr {
		out = append(out, Entry[E, N]{
			Element: el,
			Count:   cnt,
		})
	}

	slices.SortFunc(out, func(a, b Entry[E, N]) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Element < b.Element
	})

	return out
}
