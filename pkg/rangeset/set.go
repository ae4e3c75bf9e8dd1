package rangeset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/henderiw/rangemap/pkg/interval"
	"github.com/henderiw/rangemap/pkg/rangemap"
)

// Set stores non-overlapping intervals without a payload. It is a thin
// wrapper over a range map with a unit value; unit values always compare
// equal, so coalescing inserts merge every touching neighbor.
type Set[E any] struct {
	m *rangemap.Map[E, struct{}]
}

func New[E any](d interval.Domain[E]) *Set[E] {
	return &Set[E]{
		m: rangemap.New(d, func(a, b struct{}) bool { return true }),
	}
}

// From builds a set from an unordered interval sequence, failing with
// ErrOverlap when any two members overlap.
func From[E any](d interval.Domain[E], ivals []interval.Interval[E]) (*Set[E], error) {
	entries := make(rangemap.Entries[E, struct{}], 0, len(ivals))
	for _, ival := range ivals {
		entries = append(entries, rangemap.NewEntry(ival, struct{}{}))
	}
	m, err := rangemap.From(d, func(a, b struct{}) bool { return true }, entries)
	if err != nil {
		return nil, err
	}
	return &Set[E]{m: m}, nil
}

// Insert adds ival only if nothing overlaps it.
func (r *Set[E]) Insert(ival interval.Interval[E]) error {
	return r.m.Insert(ival, struct{}{})
}

// InsertCoalescing adds ival, absorbing whatever it overlaps and merging
// with touching neighbors.
func (r *Set[E]) InsertCoalescing(ival interval.Interval[E]) error {
	return r.m.InsertCoalescing(ival, struct{}{})
}

// Remove clears the span ival and returns the former members that were
// removed or truncated, ascending.
func (r *Set[E]) Remove(ival interval.Interval[E]) ([]interval.Interval[E], error) {
	entries, err := r.m.Remove(ival)
	if err != nil {
		return nil, err
	}
	return intervals(entries), nil
}

func (r *Set[E]) Has(p E) bool {
	return r.m.Has(p)
}

func (r *Set[E]) Contains(ival interval.Interval[E]) (bool, error) {
	return r.m.Contains(ival)
}

func (r *Set[E]) Overlaps(ival interval.Interval[E]) (bool, error) {
	return r.m.Overlaps(ival)
}

func (r *Set[E]) Overlapping(ival interval.Interval[E]) (*rangemap.Iterator[E, struct{}], error) {
	return r.m.Overlapping(ival)
}

func (r *Set[E]) Gaps(ival interval.Interval[E]) (*rangemap.GapIterator[E], error) {
	return r.m.Gaps(ival)
}

func (r *Set[E]) Union(other *Set[E]) *Set[E] {
	return &Set[E]{m: r.m.Union(other.m)}
}

func (r *Set[E]) Intersection(other *Set[E]) *Set[E] {
	return &Set[E]{m: r.m.Intersection(other.m)}
}

func (r *Set[E]) Difference(other *Set[E]) *Set[E] {
	return &Set[E]{m: r.m.Difference(other.m)}
}

func (r *Set[E]) SymmetricDifference(other *Set[E]) *Set[E] {
	return &Set[E]{m: r.m.SymmetricDifference(other.m)}
}

func (r *Set[E]) First() (interval.Interval[E], bool) {
	e, ok := r.m.First()
	if !ok {
		return interval.Interval[E]{}, false
	}
	return e.Interval(), true
}

func (r *Set[E]) Last() (interval.Interval[E], bool) {
	e, ok := r.m.Last()
	if !ok {
		return interval.Interval[E]{}, false
	}
	return e.Interval(), true
}

func (r *Set[E]) Len() int {
	return r.m.Len()
}

func (r *Set[E]) IsEmpty() bool {
	return r.m.IsEmpty()
}

func (r *Set[E]) GetAll() []interval.Interval[E] {
	return intervals(r.m.GetAll())
}

func (r *Set[E]) Iterate() *rangemap.Iterator[E, struct{}] {
	return r.m.Iterate()
}

func (r *Set[E]) Clone() *Set[E] {
	return &Set[E]{m: r.m.Clone()}
}

func (r *Set[E]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, ival := range r.GetAll() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ival.String())
	}
	b.WriteByte('}')
	return b.String()
}

// The persisted layout is the ordered sequence of (start, end) records.
// Decoding re-validates the members; the target set must have been
// created with New so the domain is in place.

func (r *Set[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.GetAll())
}

func (r *Set[E]) UnmarshalJSON(data []byte) error {
	var ivals []interval.Interval[E]
	if err := json.Unmarshal(data, &ivals); err != nil {
		return err
	}
	entries := make(rangemap.Entries[E, struct{}], 0, len(ivals))
	for _, ival := range ivals {
		entries = append(entries, rangemap.NewEntry(ival, struct{}{}))
	}
	m, err := rangemap.From(r.m.Domain(), func(a, b struct{}) bool { return true }, entries)
	if err != nil {
		return fmt.Errorf("decode set: %w", err)
	}
	r.m = m
	return nil
}

func intervals[E any](entries rangemap.Entries[E, struct{}]) []interval.Interval[E] {
	out := make([]interval.Interval[E], 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Interval())
	}
	return out
}
