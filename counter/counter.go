// Package counter provides a multiset: a mapping from distinct elements
// to positive occurrence counts, in the manner of Python's
// collections.Counter. It supports counting elements from slices,
// iterators and channels, a most-common query, and multiset algebra
// (add, subtract, intersect, union) over pairs of counters.
// It also provides utility functions for working with counters.
package counter

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Counter counts occurrences of elements. It is a plain map from
// element to count, so the full map API is available for direct
// manipulation: single-element lookup, range iteration, manual
// insertion and removal all work as they do on any map.
//
// Every entry holds a strictly positive count. Subtract and the
// operator methods maintain this themselves; callers poking at the
// map directly should delete entries rather than store zero or
// negative counts, or the ordered queries may return surprising
// results.
//
// Counter is not safe for concurrent mutation. Either guard it with a
// mutex, or partition the work across goroutines and merge the
// per-goroutine counters with Add afterward (see the parallel
// package).
type Counter[E comparable, N constraints.Signed] map[E]N

// New returns an empty Counter.
func New[E comparable, N constraints.Signed]() Counter[E, N] {
	return make(Counter[E, N])
}

// Init returns a Counter populated with the occurrence counts of
// every element of the slice. It is equivalent to New followed by
// Update. The count type is int; use New and Update directly for
// other count types.
func Init[S ~[]E, E comparable](slice S) Counter[E, int] {
	c := New[E, int]()
	c.Update(slice...)
	return c
}

// FromChannel receives from ch until it is closed and counts every
// element received. The receive loop runs in the calling goroutine:
// FromChannel does not return until ch is closed.
//
// This is the drain half of a parallel build: workers send elements
// on ch, the channel serializes them, and FromChannel aggregates
// sequentially. The final counts do not depend on how the senders
// were interleaved.
func FromChannel[E comparable](ch <-chan E) Counter[E, int] {
	c := New[E, int]()
	for v := range ch {
		c.Update(v)
	}
	return c
}

// Update adds one to the count of each element, inserting elements
// not yet present with a count of one. Repeated elements are counted
// once per occurrence. The result does not depend on the order of
// the elements.
//
// If incrementing a count would overflow N, Update panics rather
// than wrap around.
func (c Counter[E, N]) Update(items ...E) {
	for _, v := range items {
		n := c[v] + 1
		if n < c[v] {
			panic("count overflow")
		}
		c[v] = n
	}
}

// Subtract removes one occurrence of each element. Elements not
// present are skipped: subtracting an absent element does not create
// a negative entry. An entry whose count reaches zero is removed
// immediately, so later occurrences of the same element in the same
// call are skipped too.
func (c Counter[E, N]) Subtract(items ...E) {
	for _, v := range items {
		n, ok := c[v]
		if !ok {
			continue
		}
		n--
		if n <= 0 {
			delete(c, v)
		} else {
			c[v] = n
		}
	}
}

// Get returns the count of el, or zero if it is not present.
func (c Counter[E, N]) Get(el E) N {
	return c[el]
}

// Len returns the number of distinct elements in the counter.
func (c Counter[E, N]) Len() int {
	return len(c)
}

// Total sums up all counts in the counter.
func (c Counter[E, N]) Total() N {
	var sum N

	for _, cnt := range c {
		sum += cnt
	}

	return sum
}

// Elements returns the distinct elements in the counter, in an
// unspecified order.
func (c Counter[E, N]) Elements() []E {
	return maps.Keys(c)
}

// Clone returns a copy of the counter. Mutating the copy does not
// affect the original.
func (c Counter[E, N]) Clone() Counter[E, N] {
	return maps.Clone(c)
}
