// Package ordered provides a counter that remembers first-insertion
// order. It is the counter to reach for when most-common queries must
// be reproducible without imposing an ordering on the elements:
// elements with equal counts are reported in the order they first
// entered the counter.
package ordered

import (
	"golang.org/x/exp/slices"

	"go.lepak.sg/multiset/counter"
)

// Counter counts occurrences of elements, like counter.Counter, and
// additionally tracks the order in which distinct elements were first
// inserted. An element removed by Subtract forfeits its position; if
// it is inserted again later, it rejoins at the back.
//
// Counter is not safe for concurrent use.
type Counter[E comparable] struct {
	m map[E]*entry[E]

	head, tail *entry[E]
}

type entry[E comparable] struct {
	el    E
	count int

	prev, next *entry[E]
}

// New returns a pointer to a new Counter.
func New[E comparable]() *Counter[E] {
	return &Counter[E]{
		m: make(map[E]*entry[E]),
	}
}

// Init returns a Counter populated with the occurrence counts of
// every element of the slice, remembering first-insertion order.
func Init[S ~[]E, E comparable](slice S) *Counter[E] {
	c := New[E]()
	c.Update(slice...)
	return c
}

func (c *Counter[E]) remove(e *entry[E]) {
	if e == nil {
		panic("nil entry")
	}

	if c.head == nil || c.tail == nil {
		panic("nil head or tail")
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		if c.head != e {
			panic("entry has no previous node but it is not the head")
		}
		c.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		if c.tail != e {
			panic("entry has no next node but it is not the tail")
		}
		c.tail = e.prev
	}
}

func (c *Counter[E]) push(e *entry[E]) {
	if e == nil {
		panic("nil entry")
	}

	if c.head == nil && c.tail == nil {
		c.head, c.tail = e, e
		return
	}

	e.prev = c.tail
	c.tail.next = e
	c.tail = e
}

// Update adds one to the count of each element. An element not yet
// present is appended to the insertion order with a count of one.
func (c *Counter[E]) Update(items ...E) {
	for _, v := range items {
		e, ok := c.m[v]
		if !ok {
			e = &entry[E]{el: v}
			c.m[v] = e
			c.push(e)
		}
		e.count++
	}
}

// Subtract removes one occurrence of each element. Absent elements
// are skipped. An entry whose count reaches zero is removed entirely,
// along with its position in the insertion order.
func (c *Counter[E]) Subtract(items ...E) {
	for _, v := range items {
		e, ok := c.m[v]
		if !ok {
			continue
		}
		e.count--
		if e.count <= 0 {
			c.remove(e)
			delete(c.m, v)
		}
	}
}

// Get returns the count of el, or zero if it is not present.
func (c *Counter[E]) Get(el E) int {
	e, ok := c.m[el]
	if !ok {
		return 0
	}
	return e.count
}

// Len returns the number of distinct elements in the counter.
func (c *Counter[E]) Len() int {
	return len(c.m)
}

// Total sums up all counts in the counter.
func (c *Counter[E]) Total() int {
	sum := 0

	for _, e := range c.m {
		sum += e.count
	}

	return sum
}

// Entries returns every entry of the counter in first-insertion
// order.
func (c *Counter[E]) Entries() []counter.Entry[E, int] {
	out := make([]counter.Entry[E, int], 0, len(c.m))

	for e := c.head; e != nil; e = e.next {
		out = append(out, counter.Entry[E, int]{
			Element: e.el,
			Count:   e.count,
		})
	}

	return out
}

// MostCommon returns every entry of the counter, most frequent first.
// Elements with equal counts keep their first-insertion order,
// so repeated queries over the same counter return the same sequence.
// The counter is not modified.
func (c *Counter[E]) MostCommon() []counter.Entry[E, int] {
	out := c.Entries()

	slices.SortStableFunc(out, func(a, b counter.Entry[E, int]) bool {
		return a.Count > b.Count
	})

	return out
}

// Snapshot copies the counts into a plain counter.Counter, for use
// with the multiset algebra. The snapshot does not retain the
// insertion order and is independent of the Counter afterward.
func (c *Counter[E]) Snapshot() counter.Counter[E, int] {
	out := counter.New[E, int]()

	for el, e := range c.m {
		out[el] = e.count
	}

	return out
}
