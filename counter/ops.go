package counter

import "golang.org/x/exp/constraints"

// fold makes a copy of a, then folds b into it using the function f.
// Keys present only in a keep their count from a; keys present only
// in b are folded against a zero count.
func fold[E comparable, N constraints.Signed](a, b Counter[E, N], f func(l, r N) N) Counter[E, N] {
	out := make(Counter[E, N], len(a))

	for el, cnt := range a {
		out[el] = cnt
	}

	for el, cnt := range b {
		out[el] = f(out[el], cnt)
	}

	return out
}

// prune removes entries with non-positive counts, restoring the
// positive-count invariant after a fold.
func prune[E comparable, N constraints.Signed](c Counter[E, N]) Counter[E, N] {
	for el, cnt := range c {
		if cnt <= 0 {
			delete(c, el)
		}
	}
	return c
}

// Add returns a new Counter holding, for every element of either
// counter, the sum of its counts in c and d. An element present on
// only one side keeps its count from that side. Neither operand is
// modified.
//
// Add panics if a summed count would overflow N.
func (c Counter[E, N]) Add(d Counter[E, N]) Counter[E, N] {
	return fold(c, d, func(l, r N) N {
		s := l + r
		if (r > 0 && s < l) || (r < 0 && s > l) {
			panic("count overflow")
		}
		return s
	})
}

// Sub returns a new Counter holding, for every element, the count in
// c minus the count in d, floored at zero: elements whose difference
// is not positive are omitted entirely. Neither operand is modified.
func (c Counter[E, N]) Sub(d Counter[E, N]) Counter[E, N] {
	return prune(fold(c, d, func(l, r N) N { return l - r }))
}

// Intersect returns a new Counter holding, for every element present
// in both c and d, the smaller of the two counts. Elements missing
// from either side are omitted. Neither operand is modified.
func (c Counter[E, N]) Intersect(d Counter[E, N]) Counter[E, N] {
	out := make(Counter[E, N])

	for el, cnt := range c {
		dcnt, ok := d[el]
		if !ok {
			continue
		}
		if dcnt < cnt {
			cnt = dcnt
		}
		if cnt > 0 {
			out[el] = cnt
		}
	}

	return out
}

// Union returns a new Counter whose element set is the union of both
// operands' element sets, with each element carrying the larger of
// the two counts. Neither operand is modified.
func (c Counter[E, N]) Union(d Counter[E, N]) Counter[E, N] {
	return prune(fold(c, d, func(l, r N) N {
		if l > r {
			return l
		}
		return r
	}))
}
