package interval

import (
	"fmt"
	"strings"
)

// Interval is a contiguous span of the domain delimited by a start and an
// end bound. Bound kinds are preserved as given; the domain is consulted
// only to decide emptiness and adjacency.
type Interval[E any] struct {
	Start Bound[E] `json:"start"`
	End   Bound[E] `json:"end"`
}

func FromBounds[E any](start, end Bound[E]) Interval[E] {
	return Interval[E]{Start: start, End: end}
}

// New builds an interval and rejects empty or inverted ones with
// ErrInvalidInterval.
func New[E any](d Domain[E], start, end Bound[E]) (Interval[E], error) {
	r := Interval[E]{Start: start, End: end}
	if !r.IsValid(d) {
		return Interval[E]{}, fmt.Errorf("interval %s is empty or inverted: %w", r, ErrInvalidInterval)
	}
	return r, nil
}

// Closed returns [from,to].
func Closed[E any](from, to E) Interval[E] {
	return Interval[E]{Start: Incl(from), End: Incl(to)}
}

// ClosedOpen returns [from,to).
func ClosedOpen[E any](from, to E) Interval[E] {
	return Interval[E]{Start: Incl(from), End: Excl(to)}
}

// OpenClosed returns (from,to].
func OpenClosed[E any](from, to E) Interval[E] {
	return Interval[E]{Start: Excl(from), End: Incl(to)}
}

// Open returns (from,to).
func Open[E any](from, to E) Interval[E] {
	return Interval[E]{Start: Excl(from), End: Excl(to)}
}

// AtLeast returns [v,+inf).
func AtLeast[E any](v E) Interval[E] {
	return Interval[E]{Start: Incl(v), End: Unbounded[E]()}
}

// AtMost returns (-inf,v].
func AtMost[E any](v E) Interval[E] {
	return Interval[E]{Start: Unbounded[E](), End: Incl(v)}
}

// GreaterThan returns (v,+inf).
func GreaterThan[E any](v E) Interval[E] {
	return Interval[E]{Start: Excl(v), End: Unbounded[E]()}
}

// LessThan returns (-inf,v).
func LessThan[E any](v E) Interval[E] {
	return Interval[E]{Start: Unbounded[E](), End: Excl(v)}
}

// All returns (-inf,+inf).
func All[E any]() Interval[E] {
	return Interval[E]{Start: Unbounded[E](), End: Unbounded[E]()}
}

func (r Interval[E]) String() string {
	var b strings.Builder
	switch r.Start.kind {
	case BoundUnbounded:
		b.WriteString("(-inf")
	case BoundIncluded:
		fmt.Fprintf(&b, "[%v", r.Start.value)
	case BoundExcluded:
		fmt.Fprintf(&b, "(%v", r.Start.value)
	}
	b.WriteByte(',')
	switch r.End.kind {
	case BoundUnbounded:
		b.WriteString("+inf)")
	case BoundIncluded:
		fmt.Fprintf(&b, "%v]", r.End.value)
	case BoundExcluded:
		fmt.Fprintf(&b, "%v)", r.End.value)
	}
	return b.String()
}

// IsEmpty reports whether r covers no point of the domain. Exclusive bounds
// are normalized to their inclusive neighbor first, so (x,x+1) over a
// discrete domain is empty even though its raw bounds straddle.
func (r Interval[E]) IsEmpty(d Domain[E]) bool {
	start, end := r.Start, r.End
	if start.kind == BoundExcluded {
		v, ok := d.Next(start.value)
		if !ok {
			return true
		}
		start = Incl(v)
	}
	if end.kind == BoundExcluded {
		v, ok := d.Previous(end.value)
		if !ok {
			return true
		}
		end = Incl(v)
	}
	if start.kind == BoundUnbounded || end.kind == BoundUnbounded {
		return false
	}
	return d.Compare(start.value, end.value) > 0
}

func (r Interval[E]) IsValid(d Domain[E]) bool {
	return !r.IsEmpty(d)
}

// Contains reports whether the point p lies inside r.
func (r Interval[E]) Contains(d Domain[E], p E) bool {
	return r.Start.startsBefore(d, p) && r.End.endsAfter(d, p)
}

// Overlaps reports whether r and other share at least one point of the
// continuous order. Touching intervals do not overlap.
func (r Interval[E]) Overlaps(d Domain[E], other Interval[E]) bool {
	return CompareStartToEnd(d, r.Start, other.End) <= 0 &&
		CompareStartToEnd(d, other.Start, r.End) <= 0
}

// Touches reports whether r and other are adjacent: no domain value lies
// between them and they share no point.
func (r Interval[E]) Touches(d Domain[E], other Interval[E]) bool {
	return touchesAfter(d, r.End, other.Start) || touchesAfter(d, other.End, r.Start)
}

// touchesAfter reports whether an earlier interval ending at end is
// adjacent to a later interval starting at start.
func touchesAfter[E any](d Domain[E], end, start Bound[E]) bool {
	if end.kind == BoundUnbounded || start.kind == BoundUnbounded {
		return false
	}
	switch {
	case end.kind == BoundIncluded && start.kind == BoundExcluded:
		return d.Compare(end.value, start.value) == 0
	case end.kind == BoundExcluded && start.kind == BoundIncluded:
		return d.Compare(end.value, start.value) == 0
	case end.kind == BoundIncluded && start.kind == BoundIncluded:
		n, ok := d.Next(end.value)
		return ok && d.Compare(n, start.value) == 0
	default:
		n, ok := d.Next(start.value)
		return ok && d.Compare(n, end.value) == 0
	}
}

// Equal reports whether r and other have the same bounds under the domain
// order.
func (r Interval[E]) Equal(d Domain[E], other Interval[E]) bool {
	return CompareStarts(d, r.Start, other.Start) == 0 &&
		CompareEnds(d, r.End, other.End) == 0
}

// EntirelyBefore returns whether r lies entirely before other, touching
// allowed.
func (r Interval[E]) EntirelyBefore(d Domain[E], other Interval[E]) bool {
	return CompareStartToEnd(d, other.Start, r.End) > 0
}

// CoveredBy returns whether r is entirely contained within other.
func (r Interval[E]) CoveredBy(d Domain[E], other Interval[E]) bool {
	return CompareStarts(d, other.Start, r.Start) <= 0 &&
		CompareEnds(d, r.End, other.End) <= 0
}

// InMiddleOf returns whether r is inside other without reaching either of
// other's bounds.
func (r Interval[E]) InMiddleOf(d Domain[E], other Interval[E]) bool {
	return CompareStarts(d, other.Start, r.Start) < 0 &&
		CompareEnds(d, r.End, other.End) < 0
}

// OverlapsStartOf returns whether r reaches other's start but not all of
// other.
func (r Interval[E]) OverlapsStartOf(d Domain[E], other Interval[E]) bool {
	return CompareStarts(d, r.Start, other.Start) <= 0 &&
		CompareEnds(d, r.End, other.End) < 0
}

// OverlapsEndOf returns whether r reaches other's end but starts after
// other does.
func (r Interval[E]) OverlapsEndOf(d Domain[E], other Interval[E]) bool {
	return CompareStarts(d, other.Start, r.Start) < 0 &&
		CompareEnds(d, other.End, r.End) <= 0
}

// Enclose returns the smallest interval covering both r and other.
func (r Interval[E]) Enclose(d Domain[E], other Interval[E]) Interval[E] {
	out := r
	if CompareStarts(d, other.Start, out.Start) < 0 {
		out.Start = other.Start
	}
	if CompareEnds(d, other.End, out.End) > 0 {
		out.End = other.End
	}
	return out
}
