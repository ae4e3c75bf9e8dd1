package interval

import "fmt"

// BoundKind discriminates the three endpoint forms an interval side can take.
type BoundKind uint8

const (
	BoundIncluded BoundKind = iota
	BoundExcluded
	BoundUnbounded
)

func (k BoundKind) String() string {
	switch k {
	case BoundIncluded:
		return "included"
	case BoundExcluded:
		return "excluded"
	case BoundUnbounded:
		return "unbounded"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

func ParseBoundKind(s string) (BoundKind, error) {
	switch s {
	case "included":
		return BoundIncluded, nil
	case "excluded":
		return BoundExcluded, nil
	case "unbounded":
		return BoundUnbounded, nil
	}
	return 0, fmt.Errorf("unknown bound kind %q", s)
}

// Bound is one endpoint of an interval. The zero value is Incl of the
// domain's zero value.
type Bound[E any] struct {
	kind  BoundKind
	value E
}

func Incl[E any](v E) Bound[E] {
	return Bound[E]{kind: BoundIncluded, value: v}
}

func Excl[E any](v E) Bound[E] {
	return Bound[E]{kind: BoundExcluded, value: v}
}

func Unbounded[E any]() Bound[E] {
	return Bound[E]{kind: BoundUnbounded}
}

func (b Bound[E]) Kind() BoundKind { return b.kind }

// Value returns the endpoint value. Meaningless for unbounded bounds.
func (b Bound[E]) Value() E { return b.value }

func (b Bound[E]) IsUnbounded() bool { return b.kind == BoundUnbounded }

// Complement flips an inclusive cut boundary into the exclusive remainder
// boundary and vice versa. Trimming an entry at Incl(x) leaves a remainder
// delimited by Excl(x), so the trimmed entry and its replacement touch
// without sharing x.
func (b Bound[E]) Complement() Bound[E] {
	switch b.kind {
	case BoundIncluded:
		return Bound[E]{kind: BoundExcluded, value: b.value}
	case BoundExcluded:
		return Bound[E]{kind: BoundIncluded, value: b.value}
	}
	return b
}

// CompareStarts orders two bounds interpreted as interval starts: unbounded
// before everything, Incl(x) before Excl(x).
func CompareStarts[E any](d Domain[E], a, b Bound[E]) int {
	if a.kind == BoundUnbounded || b.kind == BoundUnbounded {
		if a.kind == b.kind {
			return 0
		}
		if a.kind == BoundUnbounded {
			return -1
		}
		return 1
	}
	if c := d.Compare(a.value, b.value); c != 0 {
		return c
	}
	if a.kind == b.kind {
		return 0
	}
	if a.kind == BoundIncluded {
		return -1
	}
	return 1
}

// CompareEnds orders two bounds interpreted as interval ends: unbounded
// after everything, Excl(x) before Incl(x).
func CompareEnds[E any](d Domain[E], a, b Bound[E]) int {
	if a.kind == BoundUnbounded || b.kind == BoundUnbounded {
		if a.kind == b.kind {
			return 0
		}
		if a.kind == BoundUnbounded {
			return 1
		}
		return -1
	}
	if c := d.Compare(a.value, b.value); c != 0 {
		return c
	}
	if a.kind == b.kind {
		return 0
	}
	if a.kind == BoundExcluded {
		return -1
	}
	return 1
}

// CompareStartToEnd compares a start bound against an end bound. A result
// <= 0 means the span from start to end holds at least one point of the
// continuous order: Incl(x) vs Incl(x) share x, every other same-value
// pairing is disjoint.
func CompareStartToEnd[E any](d Domain[E], start, end Bound[E]) int {
	if start.kind == BoundUnbounded || end.kind == BoundUnbounded {
		return -1
	}
	if c := d.Compare(start.value, end.value); c != 0 {
		return c
	}
	if start.kind == BoundIncluded && end.kind == BoundIncluded {
		return 0
	}
	return 1
}

// startsBefore reports whether a point lies at or after the start bound.
func (b Bound[E]) startsBefore(d Domain[E], p E) bool {
	switch b.kind {
	case BoundUnbounded:
		return true
	case BoundIncluded:
		return d.Compare(b.value, p) <= 0
	}
	return d.Compare(b.value, p) < 0
}

// endsAfter reports whether a point lies at or before the end bound.
func (b Bound[E]) endsAfter(d Domain[E], p E) bool {
	switch b.kind {
	case BoundUnbounded:
		return true
	case BoundIncluded:
		return d.Compare(p, b.value) <= 0
	}
	return d.Compare(p, b.value) < 0
}
