package rangetable

import (
	"fmt"
	"sync"

	"github.com/henderiw/rangemap/pkg/interval"
	"github.com/henderiw/rangemap/pkg/rangemap"
	"k8s.io/apimachinery/pkg/labels"
)

type Table[E any] interface {
	Get(ival interval.Interval[E]) (labels.Set, error)
	Claim(ival interval.Interval[E], d labels.Set) error
	ClaimFree(n int, d labels.Set) (rangemap.Entry[E, labels.Set], error)
	Release(ival interval.Interval[E]) error
	Update(ival interval.Interval[E], d labels.Set) error

	Size() int
	Has(ival interval.Interval[E]) bool

	IsFree(ival interval.Interval[E]) bool
	FindFree(n int) (interval.Interval[E], error)

	GetAll() rangemap.Entries[E, labels.Set]
	GetByLabel(selector labels.Selector) rangemap.Entries[E, labels.Set]
}

// New returns a claim table handing out spans inside the universe
// interval. Claims are strict; overlapping an existing claim fails.
func New[E any](d interval.Domain[E], universe interval.Interval[E]) (Table[E], error) {
	if !universe.IsValid(d) {
		return nil, fmt.Errorf("universe %s: %w", universe, interval.ErrInvalidInterval)
	}
	return &rangeTable[E]{
		m:        new(sync.RWMutex),
		d:        d,
		universe: universe,
		entries:  rangemap.New[E, labels.Set](d, nil),
	}, nil
}

type rangeTable[E any] struct {
	m        *sync.RWMutex
	d        interval.Domain[E]
	universe interval.Interval[E]
	entries  *rangemap.Map[E, labels.Set]
}

func (r *rangeTable[E]) validate(ival interval.Interval[E]) error {
	if !ival.IsValid(r.d) {
		return fmt.Errorf("range %s: %w", ival, interval.ErrInvalidInterval)
	}
	if !ival.CoveredBy(r.d, r.universe) {
		return fmt.Errorf("range %s does not fit in the universe %s", ival, r.universe)
	}
	return nil
}

func (r *rangeTable[E]) Get(ival interval.Interval[E]) (labels.Set, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, err := r.get(ival)
	if err != nil {
		return nil, err
	}
	return e.Value(), nil
}

// get returns the entry claimed on exactly ival.
func (r *rangeTable[E]) get(ival interval.Interval[E]) (rangemap.Entry[E, labels.Set], error) {
	if err := r.validate(ival); err != nil {
		return nil, err
	}
	iter, err := r.entries.Overlapping(ival)
	if err != nil {
		return nil, err
	}
	for iter.Next() {
		if iter.Entry().Interval().Equal(r.d, ival) {
			return iter.Entry(), nil
		}
	}
	return nil, fmt.Errorf("no match found for range %s", ival)
}

func (r *rangeTable[E]) Claim(ival interval.Interval[E], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(ival); err != nil {
		return err
	}
	if err := r.entries.Insert(ival, d); err != nil {
		return fmt.Errorf("claim failed range %s already claimed", ival)
	}
	return nil
}

func (r *rangeTable[E]) ClaimFree(n int, d labels.Set) (rangemap.Entry[E, labels.Set], error) {
	r.m.Lock()
	defer r.m.Unlock()

	ival, err := r.findFree(n)
	if err != nil {
		return nil, err
	}
	if err := r.entries.Insert(ival, d); err != nil {
		return nil, err
	}
	return rangemap.NewEntry(ival, d), nil
}

func (r *rangeTable[E]) Release(ival interval.Interval[E]) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(ival); err != nil {
		return err
	}
	removed, err := r.entries.Remove(ival)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return fmt.Errorf("release failed range %s not claimed", ival)
	}
	return nil
}

func (r *rangeTable[E]) Update(ival interval.Interval[E], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, err := r.get(ival); err != nil {
		return fmt.Errorf("update failed range %s not claimed", ival)
	}
	return r.entries.InsertOverwrite(ival, d)
}

func (r *rangeTable[E]) Size() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.entries.Len()
}

func (r *rangeTable[E]) Has(ival interval.Interval[E]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, err := r.get(ival)
	return err == nil
}

func (r *rangeTable[E]) IsFree(ival interval.Interval[E]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	if err := r.validate(ival); err != nil {
		return false
	}
	overlaps, err := r.entries.Overlaps(ival)
	if err != nil {
		return false
	}
	return !overlaps
}

func (r *rangeTable[E]) FindFree(n int) (interval.Interval[E], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFree(n)
}

// findFree scans the uncovered spans of the universe for the first run
// of n consecutive values. Gaps with an unbounded lower edge have no
// first value to hand out and are skipped.
func (r *rangeTable[E]) findFree(n int) (interval.Interval[E], error) {
	if n < 1 {
		return interval.Interval[E]{}, fmt.Errorf("size %d must be at least 1", n)
	}
	iter, err := r.entries.Gaps(r.universe)
	if err != nil {
		return interval.Interval[E]{}, err
	}
	for iter.Next() {
		gap := iter.Interval()
		first, ok := gapFirst(r.d, gap)
		if !ok {
			continue
		}
		last := first
		fits := true
		for i := 1; i < n; i++ {
			next, ok := r.d.Next(last)
			if !ok || !gap.Contains(r.d, next) {
				fits = false
				break
			}
			last = next
		}
		if fits {
			return interval.Closed(first, last), nil
		}
	}
	return interval.Interval[E]{}, fmt.Errorf("no free range of size %d found", n)
}

func gapFirst[E any](d interval.Domain[E], gap interval.Interval[E]) (E, bool) {
	switch gap.Start.Kind() {
	case interval.BoundIncluded:
		return gap.Start.Value(), true
	case interval.BoundExcluded:
		return d.Next(gap.Start.Value())
	}
	var zero E
	return zero, false
}

func (r *rangeTable[E]) GetAll() rangemap.Entries[E, labels.Set] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.entries.GetAll()
}

func (r *rangeTable[E]) GetByLabel(selector labels.Selector) rangemap.Entries[E, labels.Set] {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := rangemap.Entries[E, labels.Set]{}
	iter := r.entries.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Entry().Value()) {
			entries = append(entries, iter.Entry())
		}
	}
	return entries
}
