package counter

// Iterator describes some iterator over a sequence of elements.
// Next reports whether another element is available; Item returns the
// current element. Iterators let a Counter consume a sequence lazily,
// one element at a time, without buffering it into a slice first.
type Iterator[E any] interface {
	Next() bool
	Item() E
}

// InitIterator returns a Counter populated with the occurrence counts
// of every element produced by the iterator. The iterator is consumed
// element by element until Next returns false.
func InitIterator[E comparable](it Iterator[E]) Counter[E, int] {
	c := New[E, int]()
	c.UpdateIterator(it)
	return c
}

// UpdateIterator is Update over an iterator: it adds one to the count
// of each element the iterator produces, consuming it to exhaustion.
func (c Counter[E, N]) UpdateIterator(it Iterator[E]) {
	for it.Next() {
		c.Update(it.Item())
	}
}

// SubtractIterator is Subtract over an iterator: it removes one
// occurrence of each element the iterator produces, consuming it to
// exhaustion. Absent elements are skipped and entries reaching zero
// are removed, exactly as in Subtract.
func (c Counter[E, N]) SubtractIterator(it Iterator[E]) {
	for it.Next() {
		c.Subtract(it.Item())
	}
}
