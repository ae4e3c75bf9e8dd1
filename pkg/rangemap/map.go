package rangemap

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/henderiw/rangemap/pkg/interval"
	"github.com/tidwall/btree"
)

// EqualFunc reports whether two values are equal, used by coalescing
// decisions. A nil EqualFunc falls back to reflect.DeepEqual.
type EqualFunc[V any] func(a, b V) bool

// Map stores non-overlapping intervals with a value per interval.
// Intervals may touch. A Map carries no internal locking; callers that
// share one across goroutines apply single-writer-or-many-readers
// discipline themselves.
type Map[E, V any] struct {
	d    interval.Domain[E]
	eq   EqualFunc[V]
	tree *btree.BTreeG[item[E, V]]
}

func New[E, V any](d interval.Domain[E], eq EqualFunc[V]) *Map[E, V] {
	if eq == nil {
		eq = func(a, b V) bool { return reflect.DeepEqual(a, b) }
	}
	return &Map[E, V]{
		d:    d,
		eq:   eq,
		tree: newTree[E, V](d),
	}
}

// From builds a map from an unordered entry sequence. It fails with
// ErrInvalidInterval on a malformed member and ErrOverlap when any two
// entries overlap.
func From[E, V any](d interval.Domain[E], eq EqualFunc[V], entries Entries[E, V]) (*Map[E, V], error) {
	items := make([]item[E, V], 0, len(entries))
	for _, e := range entries {
		if !e.Interval().IsValid(d) {
			return nil, fmt.Errorf("entry %s: %w", e.Interval(), interval.ErrInvalidInterval)
		}
		items = append(items, item[E, V]{ival: e.Interval(), value: e.Value()})
	}
	sort.Slice(items, func(i, j int) bool {
		return interval.CompareStarts(d, items[i].ival.Start, items[j].ival.Start) < 0
	})
	for i := 1; i < len(items); i++ {
		if items[i-1].ival.Overlaps(d, items[i].ival) {
			return nil, fmt.Errorf("entry %s overlaps entry %s: %w", items[i-1].ival, items[i].ival, ErrOverlap)
		}
	}
	r := New(d, eq)
	for _, it := range items {
		r.tree.Load(it)
	}
	return r, nil
}

// punch clears the span q out of the map: fully covered entries are
// removed, straddling entries keep their value but lose the part inside
// q. Remainder bounds are the complement of the cut bound, so remainders
// touch q without sharing a point. Returns the former entries as stored,
// ascending.
func (r *Map[E, V]) punch(q interval.Interval[E]) []item[E, V] {
	items := r.overlappingItems(q)
	for _, it := range items {
		r.tree.Delete(it)
		if interval.CompareStarts(r.d, it.ival.Start, q.Start) < 0 {
			left := interval.FromBounds(it.ival.Start, q.Start.Complement())
			if left.IsValid(r.d) {
				r.tree.Set(item[E, V]{ival: left, value: it.value})
			}
		}
		if interval.CompareEnds(r.d, it.ival.End, q.End) > 0 {
			right := interval.FromBounds(q.End.Complement(), it.ival.End)
			if right.IsValid(r.d) {
				r.tree.Set(item[E, V]{ival: right, value: it.value})
			}
		}
	}
	return items
}

// InsertOverwrite stores the entry (ival, v), trimming or removing
// whatever previously occupied that span. Entries extending past either
// side of ival keep their original value over the remainder.
func (r *Map[E, V]) InsertOverwrite(ival interval.Interval[E], v V) error {
	if !ival.IsValid(r.d) {
		return fmt.Errorf("insert %s: %w", ival, interval.ErrInvalidInterval)
	}
	r.punch(ival)
	r.tree.Set(item[E, V]{ival: ival, value: v})
	return nil
}

// InsertCoalescing is InsertOverwrite followed by merging the immediate
// left and right neighbors into the new entry when they touch it and
// carry an equal value. On a map maintained exclusively through
// coalescing mutations at most one merge per side applies. Mixing
// overwrite and coalescing mutations on one map can leave touching
// equal-valued entries un-merged; that discipline is the caller's.
func (r *Map[E, V]) InsertCoalescing(ival interval.Interval[E], v V) error {
	if !ival.IsValid(r.d) {
		return fmt.Errorf("insert %s: %w", ival, interval.ErrInvalidInterval)
	}
	r.punch(ival)
	merged := ival
	if left, ok := r.predecessor(merged.Start); ok &&
		left.ival.Touches(r.d, merged) && r.eq(left.value, v) {
		r.tree.Delete(left)
		merged = merged.Enclose(r.d, left.ival)
	}
	if right, ok := r.successor(merged.Start); ok &&
		right.ival.Touches(r.d, merged) && r.eq(right.value, v) {
		r.tree.Delete(right)
		merged = merged.Enclose(r.d, right.ival)
	}
	r.tree.Set(item[E, V]{ival: merged, value: v})
	return nil
}

// Insert stores the entry only if nothing overlaps ival, failing with
// ErrOverlap otherwise.
func (r *Map[E, V]) Insert(ival interval.Interval[E], v V) error {
	if !ival.IsValid(r.d) {
		return fmt.Errorf("insert %s: %w", ival, interval.ErrInvalidInterval)
	}
	if r.overlapsAny(ival) {
		return fmt.Errorf("insert %s: %w", ival, ErrOverlap)
	}
	r.tree.Set(item[E, V]{ival: ival, value: v})
	return nil
}

// Remove clears the span ival, trimming or removing overlapping entries,
// and returns the former entries as they were stored before truncation,
// ascending.
func (r *Map[E, V]) Remove(ival interval.Interval[E]) (Entries[E, V], error) {
	if !ival.IsValid(r.d) {
		return nil, fmt.Errorf("remove %s: %w", ival, interval.ErrInvalidInterval)
	}
	return toEntries(r.punch(ival)), nil
}

// RemoveOverlapping removes every entry overlapping ival whole, without
// trimming, and returns them ascending.
func (r *Map[E, V]) RemoveOverlapping(ival interval.Interval[E]) (Entries[E, V], error) {
	if !ival.IsValid(r.d) {
		return nil, fmt.Errorf("remove overlapping %s: %w", ival, interval.ErrInvalidInterval)
	}
	items := r.overlappingItems(ival)
	for _, it := range items {
		r.tree.Delete(it)
	}
	return toEntries(items), nil
}

// SplitOff removes everything at or after the given start bound and
// returns it as a new map. An entry straddling the split point is cut,
// its value going to both sides.
func (r *Map[E, V]) SplitOff(start interval.Bound[E]) *Map[E, V] {
	out := New(r.d, r.eq)
	var moved []item[E, V]
	r.tree.Ascend(r.key(start), func(it item[E, V]) bool {
		moved = append(moved, it)
		return true
	})
	for _, it := range moved {
		r.tree.Delete(it)
		out.tree.Load(it)
	}
	if pred, ok := r.predecessor(start); ok &&
		interval.CompareStartToEnd(r.d, start, pred.ival.End) <= 0 {
		r.tree.Delete(pred)
		left := interval.FromBounds(pred.ival.Start, start.Complement())
		if left.IsValid(r.d) {
			r.tree.Set(item[E, V]{ival: left, value: pred.value})
		}
		right := interval.FromBounds(start, pred.ival.End)
		if right.IsValid(r.d) {
			out.tree.Set(item[E, V]{ival: right, value: pred.value})
		}
	}
	return out
}

// GetEntry returns the entry whose interval contains the point p. Only
// the entry with the greatest start at or before p can contain it, so a
// single cursor probe decides.
func (r *Map[E, V]) GetEntry(p E) (Entry[E, V], bool) {
	var out Entry[E, V]
	var ok bool
	r.tree.Descend(r.key(interval.Incl(p)), func(it item[E, V]) bool {
		if it.ival.Contains(r.d, p) {
			out, ok = NewEntry(it.ival, it.value), true
		}
		return false
	})
	return out, ok
}

// Get returns the value stored at the point p.
func (r *Map[E, V]) Get(p E) (V, bool) {
	e, ok := r.GetEntry(p)
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value(), true
}

func (r *Map[E, V]) Has(p E) bool {
	_, ok := r.GetEntry(p)
	return ok
}

func (r *Map[E, V]) First() (Entry[E, V], bool) {
	it, ok := r.tree.Min()
	if !ok {
		return nil, false
	}
	return NewEntry(it.ival, it.value), true
}

func (r *Map[E, V]) Last() (Entry[E, V], bool) {
	it, ok := r.tree.Max()
	if !ok {
		return nil, false
	}
	return NewEntry(it.ival, it.value), true
}

// Domain returns the discreteness contract the map was created with.
func (r *Map[E, V]) Domain() interval.Domain[E] {
	return r.d
}

func (r *Map[E, V]) Len() int {
	return r.tree.Len()
}

func (r *Map[E, V]) IsEmpty() bool {
	return r.tree.Len() == 0
}

func (r *Map[E, V]) GetAll() Entries[E, V] {
	return toEntries(r.allItems())
}

// Clone returns an independent copy sharing no mutable state; the
// backbone copy is copy-on-write.
func (r *Map[E, V]) Clone() *Map[E, V] {
	return &Map[E, V]{
		d:    r.d,
		eq:   r.eq,
		tree: r.tree.Copy(),
	}
}

func (r *Map[E, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	r.tree.Scan(func(it item[E, V]) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s:%v", it.ival, it.value)
		return true
	})
	b.WriteByte('}')
	return b.String()
}

func toEntries[E, V any](items []item[E, V]) Entries[E, V] {
	out := make(Entries[E, V], 0, len(items))
	for _, it := range items {
		out = append(out, NewEntry(it.ival, it.value))
	}
	return out
}
