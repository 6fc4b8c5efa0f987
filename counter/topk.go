package counter

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// entries is used to implement a max-heap.
type entries[E comparable, N constraints.Signed] []*Entry[E, N]

var _ heap.Interface = (*entries[int, int])(nil)

func (e entries[_, _]) Len() int {
	return len(e)
}

func (e entries[E, N]) Less(i, j int) bool {
	// yes, the sign is correct
	// see container/heap PriorityQueue example
	return e[i].Count > e[j].Count
}

func (e entries[_, _]) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

func (e *entries[E, N]) Push(x any) {
	in := x.(*Entry[E, N]) //...

	*e = append(*e, in)
}

func (e *entries[E, N]) Pop() any {
	x := (*e)[len(*e)-1]
	*e = (*e)[:len(*e)-1]
	return x
}

// entriesMin is used to implement a min-heap.
type entriesMin[E comparable, N constraints.Signed] struct {
	entries[E, N]
}

var _ heap.Interface = (*entriesMin[int, int])(nil)

func (e entriesMin[_, _]) Less(i, j int) bool {
	return e.entries[i].Count < e.entries[j].Count
}

// heapk creates either a min- or max-heap from the element-count pairs
// in the counter, then pops off k elements and returns them.
func heapk[E comparable, N constraints.Signed](ctr Counter[E, N], k int, max bool) []Entry[E, N] {
	if k == 0 {
		return []Entry[E, N]{}
	} else if k > len(ctr) {
		panic("k is larger than number of elements in ctr")
	} else if k < 0 {
		panic("k is negative")
	}

	heapslice := make([]*Entry[E, N], len(ctr))
	i := 0
	for el, cnt := range ctr {
		heapslice[i] = &Entry[E, N]{
			Element: el,
			Count:   cnt,
		}
		i++
	}

	var hptr heap.Interface

	if max {
		h := entries[E, N](heapslice)
		hptr = &h
	} else {
		h := entriesMin[E, N]{entries: heapslice}
		hptr = &h
	}

	heap.Init(hptr)

	out := make([]Entry[E, N], k)
	for i := 0; i < k; i++ {
		entry := heap.Pop(hptr).(*Entry[E, N])
		out[i] = *entry
	}

	return out
}

// TopK returns the k most-frequent elements from the counter.
// The returned entries are in descending order of frequency.
// If two elements have the same count, their relative order in
// the returned slice is undefined, however they will be after
// all elements that occur more frequently.
func TopK[E comparable, N constraints.Signed](ctr Counter[E, N], k int) []Entry[E, N] {
	return heapk(ctr, k, true)
}

// BottomK returns the k least-frequent elements from the counter.
// The returned entries are in ascending order of frequency.
// If two elements have the same count, their relative order in
// the returned slice is undefined, however they will be after
// all elements that occur less frequently.
func BottomK[E comparable, N constraints.Signed](ctr Counter[E, N], k int) []Entry[E, N] {
	return heapk(ctr, k, false)
}
