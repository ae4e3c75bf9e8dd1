package rangemap

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/henderiw/rangemap/pkg/interval"
)

// The persisted layout is the ordered sequence of (start, end, value)
// records. Decoding re-validates well-formedness and disjointness, so
// untrusted input cannot break the map's invariant. The target map must
// have been created with New so the domain is in place.

type entryJSON[E, V any] struct {
	Start interval.Bound[E] `json:"start"`
	End   interval.Bound[E] `json:"end"`
	Value V                 `json:"value"`
}

func (r *Map[E, V]) MarshalJSON() ([]byte, error) {
	recs := make([]entryJSON[E, V], 0, r.tree.Len())
	r.tree.Scan(func(it item[E, V]) bool {
		recs = append(recs, entryJSON[E, V]{
			Start: it.ival.Start,
			End:   it.ival.End,
			Value: it.value,
		})
		return true
	})
	return json.Marshal(recs)
}

func (r *Map[E, V]) UnmarshalJSON(data []byte) error {
	var recs []entryJSON[E, V]
	if err := json.Unmarshal(data, &recs); err != nil {
		return err
	}
	items := make([]item[E, V], 0, len(recs))
	for _, rec := range recs {
		ival := interval.FromBounds(rec.Start, rec.End)
		if !ival.IsValid(r.d) {
			return fmt.Errorf("record %s: %w", ival, interval.ErrInvalidInterval)
		}
		items = append(items, item[E, V]{ival: ival, value: rec.Value})
	}
	sort.Slice(items, func(i, j int) bool {
		return interval.CompareStarts(r.d, items[i].ival.Start, items[j].ival.Start) < 0
	})
	for i := 1; i < len(items); i++ {
		if items[i-1].ival.Overlaps(r.d, items[i].ival) {
			return fmt.Errorf("record %s overlaps record %s: %w", items[i-1].ival, items[i].ival, ErrOverlap)
		}
	}
	tree := newTree[E, V](r.d)
	for _, it := range items {
		tree.Load(it)
	}
	r.tree = tree
	return nil
}
