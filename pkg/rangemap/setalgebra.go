package rangemap

import (
	"github.com/henderiw/rangemap/pkg/interval"
)

// subtractItems trims every item of a by the coverage of b in a single
// forward pass over the two sorted runs, emitting the remainders with
// their original values. Remainder bounds follow the cut complement
// rule, so remainders touch b's coverage without sharing a point.
func (r *Map[E, V]) subtractItems(a, b []item[E, V]) []item[E, V] {
	var out []item[E, V]
	j := 0
	for _, it := range a {
		cur := it.ival
		for j < len(b) && b[j].ival.EntirelyBefore(r.d, cur) {
			j++
		}
		alive := true
		for k := j; k < len(b); k++ {
			bi := b[k].ival
			if !bi.Overlaps(r.d, cur) {
				break
			}
			if interval.CompareStarts(r.d, cur.Start, bi.Start) < 0 {
				left := interval.FromBounds(cur.Start, bi.Start.Complement())
				if left.IsValid(r.d) {
					out = append(out, item[E, V]{ival: left, value: it.value})
				}
			}
			if interval.CompareEnds(r.d, cur.End, bi.End) <= 0 {
				alive = false
				break
			}
			cur = interval.FromBounds(bi.End.Complement(), cur.End)
			if !cur.IsValid(r.d) {
				alive = false
				break
			}
		}
		if alive {
			out = append(out, item[E, V]{ival: cur, value: it.value})
		}
	}
	return out
}

// mergeSortedItems interleaves two sorted runs with pairwise-disjoint
// coverage into one sorted run.
func (r *Map[E, V]) mergeSortedItems(a, b []item[E, V]) []item[E, V] {
	out := make([]item[E, V], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if interval.CompareStarts(r.d, a[i].ival.Start, b[j].ival.Start) <= 0 {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// coalesceItems merges touching equal-valued neighbors in a sorted run.
func (r *Map[E, V]) coalesceItems(items []item[E, V]) []item[E, V] {
	var out []item[E, V]
	for _, it := range items {
		if n := len(out); n > 0 {
			last := out[n-1]
			if last.ival.Touches(r.d, it.ival) && r.eq(last.value, it.value) {
				out[n-1] = item[E, V]{ival: last.ival.Enclose(r.d, it.ival), value: last.value}
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func (r *Map[E, V]) load(items []item[E, V]) *Map[E, V] {
	out := New(r.d, r.eq)
	for _, it := range items {
		out.tree.Load(it)
	}
	return out
}

// Union returns a new map covering everything either operand covers.
// Where coverage overlaps, other's value wins. Touching equal-valued
// entries in the result are coalesced. Runs in O(n+m).
func (r *Map[E, V]) Union(other *Map[E, V]) *Map[E, V] {
	trimmed := r.subtractItems(r.allItems(), other.allItems())
	merged := r.mergeSortedItems(trimmed, other.allItems())
	return r.load(r.coalesceItems(merged))
}

// Intersection returns a new map covering exactly the points covered by
// both operands, keeping the receiver's values: the argument masks the
// receiver. Each overlapping pair contributes the span from the greater
// start to the lesser end. Runs in O(n+m).
func (r *Map[E, V]) Intersection(other *Map[E, V]) *Map[E, V] {
	a, b := r.allItems(), other.allItems()
	var out []item[E, V]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ai, bi := a[i].ival, b[j].ival
		if ai.Overlaps(r.d, bi) {
			start := ai.Start
			if interval.CompareStarts(r.d, bi.Start, start) > 0 {
				start = bi.Start
			}
			end := ai.End
			if interval.CompareEnds(r.d, bi.End, end) < 0 {
				end = bi.End
			}
			seg := interval.FromBounds(start, end)
			if seg.IsValid(r.d) {
				out = append(out, item[E, V]{ival: seg, value: a[i].value})
			}
		}
		if interval.CompareEnds(r.d, ai.End, bi.End) <= 0 {
			i++
		} else {
			j++
		}
	}
	return r.load(out)
}

// Difference returns a new map covering the points the receiver covers
// and other does not, values preserved. Runs in O(n+m).
func (r *Map[E, V]) Difference(other *Map[E, V]) *Map[E, V] {
	return r.load(r.subtractItems(r.allItems(), other.allItems()))
}

// SymmetricDifference returns a new map covering the points covered by
// exactly one operand, coalesced like Union. Runs in O(n+m).
func (r *Map[E, V]) SymmetricDifference(other *Map[E, V]) *Map[E, V] {
	aOnly := r.subtractItems(r.allItems(), other.allItems())
	bOnly := r.subtractItems(other.allItems(), r.allItems())
	return r.load(r.coalesceItems(r.mergeSortedItems(aOnly, bOnly)))
}
