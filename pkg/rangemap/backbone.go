package rangemap

import (
	"github.com/henderiw/rangemap/pkg/interval"
	"github.com/tidwall/btree"
)

// item is what the backbone stores: an interval and its payload, keyed by
// the interval's start bound. Stored intervals never overlap, so start
// order is a strict total order.
type item[E, V any] struct {
	ival  interval.Interval[E]
	value V
}

func newTree[E, V any](d interval.Domain[E]) *btree.BTreeG[item[E, V]] {
	return btree.NewBTreeGOptions(func(a, b item[E, V]) bool {
		return interval.CompareStarts(d, a.ival.Start, b.ival.Start) < 0
	}, btree.Options{NoLocks: true})
}

// key wraps a start bound into a probe item for cursor positioning.
func (r *Map[E, V]) key(start interval.Bound[E]) item[E, V] {
	return item[E, V]{ival: interval.Interval[E]{Start: start}}
}

func (r *Map[E, V]) allItems() []item[E, V] {
	out := make([]item[E, V], 0, r.tree.Len())
	r.tree.Scan(func(it item[E, V]) bool {
		out = append(out, it)
		return true
	})
	return out
}

// overlappingItems returns the contiguous run of stored items overlapping q
// in ascending start order. The nearest item starting before q may straddle
// into it; every other overlap starts at or after q's start.
func (r *Map[E, V]) overlappingItems(q interval.Interval[E]) []item[E, V] {
	var out []item[E, V]
	r.tree.Descend(r.key(q.Start), func(it item[E, V]) bool {
		if interval.CompareStarts(r.d, it.ival.Start, q.Start) < 0 && it.ival.Overlaps(r.d, q) {
			out = append(out, it)
		}
		return false
	})
	r.tree.Ascend(r.key(q.Start), func(it item[E, V]) bool {
		if !it.ival.Overlaps(r.d, q) {
			return false
		}
		out = append(out, it)
		return true
	})
	return out
}

// overlapsAny is overlappingItems without the collection, for the fast
// yes/no probe.
func (r *Map[E, V]) overlapsAny(q interval.Interval[E]) bool {
	found := false
	r.tree.Descend(r.key(q.Start), func(it item[E, V]) bool {
		found = it.ival.Overlaps(r.d, q)
		return false
	})
	if found {
		return true
	}
	r.tree.Ascend(r.key(q.Start), func(it item[E, V]) bool {
		found = it.ival.Overlaps(r.d, q)
		return false
	})
	return found
}

// predecessor returns the greatest item starting strictly before b.
func (r *Map[E, V]) predecessor(b interval.Bound[E]) (item[E, V], bool) {
	var out item[E, V]
	var ok bool
	r.tree.Descend(r.key(b), func(it item[E, V]) bool {
		if interval.CompareStarts(r.d, it.ival.Start, b) >= 0 {
			return true
		}
		out, ok = it, true
		return false
	})
	return out, ok
}

// successor returns the least item starting strictly after b.
func (r *Map[E, V]) successor(b interval.Bound[E]) (item[E, V], bool) {
	var out item[E, V]
	var ok bool
	r.tree.Ascend(r.key(b), func(it item[E, V]) bool {
		if interval.CompareStarts(r.d, it.ival.Start, b) <= 0 {
			return true
		}
		out, ok = it, true
		return false
	})
	return out, ok
}
