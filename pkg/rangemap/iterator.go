package rangemap

import (
	"fmt"

	"github.com/henderiw/rangemap/pkg/interval"
)

// Iterator walks entries in ascending start order over a snapshot taken
// when it was created. Mutating the map does not invalidate it.
type Iterator[E, V any] struct {
	current int
	items   []item[E, V]
}

func (r *Iterator[E, V]) Next() bool {
	r.current++
	return r.current < len(r.items)
}

func (r *Iterator[E, V]) Entry() Entry[E, V] {
	it := r.items[r.current]
	return NewEntry(it.ival, it.value)
}

// GapIterator walks the maximal uncovered sub-intervals of a query
// interval, ascending.
type GapIterator[E any] struct {
	current int
	gaps    []interval.Interval[E]
}

func (r *GapIterator[E]) Next() bool {
	r.current++
	return r.current < len(r.gaps)
}

func (r *GapIterator[E]) Interval() interval.Interval[E] {
	return r.gaps[r.current]
}

// Iterate walks every entry ascending.
func (r *Map[E, V]) Iterate() *Iterator[E, V] {
	return &Iterator[E, V]{current: -1, items: r.allItems()}
}

// Overlapping returns an iterator over the entries overlapping ival,
// ascending.
func (r *Map[E, V]) Overlapping(ival interval.Interval[E]) (*Iterator[E, V], error) {
	if !ival.IsValid(r.d) {
		return nil, fmt.Errorf("overlapping %s: %w", ival, interval.ErrInvalidInterval)
	}
	return &Iterator[E, V]{current: -1, items: r.overlappingItems(ival)}, nil
}

// Overlaps reports whether any entry overlaps ival.
func (r *Map[E, V]) Overlaps(ival interval.Interval[E]) (bool, error) {
	if !ival.IsValid(r.d) {
		return false, fmt.Errorf("overlaps %s: %w", ival, interval.ErrInvalidInterval)
	}
	return r.overlapsAny(ival), nil
}

// Gaps returns an iterator over the maximal sub-intervals of ival not
// covered by any entry. An empty map yields ival itself as the sole gap;
// unbounded query edges yield unbounded gap edges.
func (r *Map[E, V]) Gaps(ival interval.Interval[E]) (*GapIterator[E], error) {
	if !ival.IsValid(r.d) {
		return nil, fmt.Errorf("gaps %s: %w", ival, interval.ErrInvalidInterval)
	}
	return &GapIterator[E]{current: -1, gaps: r.gaps(ival)}, nil
}

// gaps emits the complement of the overlapping run inside q: before the
// first entry, between consecutive entries, after the last. Candidate
// gaps that are empty under the domain (the run straddles the query
// edge, or two entries touch) are dropped.
func (r *Map[E, V]) gaps(q interval.Interval[E]) []interval.Interval[E] {
	var out []interval.Interval[E]
	cur := q.Start
	for _, it := range r.overlappingItems(q) {
		if !it.ival.Start.IsUnbounded() {
			g := interval.FromBounds(cur, it.ival.Start.Complement())
			if g.IsValid(r.d) {
				out = append(out, g)
			}
		}
		if it.ival.End.IsUnbounded() {
			return out
		}
		cur = it.ival.End.Complement()
	}
	last := interval.FromBounds(cur, q.End)
	if last.IsValid(r.d) {
		out = append(out, last)
	}
	return out
}

// Contains reports whether ival is fully covered by the stored entries,
// i.e. its gap sequence is empty.
func (r *Map[E, V]) Contains(ival interval.Interval[E]) (bool, error) {
	if !ival.IsValid(r.d) {
		return false, fmt.Errorf("contains %s: %w", ival, interval.ErrInvalidInterval)
	}
	return len(r.gaps(ival)) == 0, nil
}
