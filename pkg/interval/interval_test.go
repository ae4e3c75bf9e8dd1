package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := Integers[int]()
	cases := map[string]struct {
		start       Bound[int]
		end         Bound[int]
		expectedErr bool
	}{
		"Closed":             {Incl(1), Incl(5), false},
		"SinglePoint":        {Incl(5), Incl(5), false},
		"HalfOpen":           {Incl(1), Excl(5), false},
		"Unbounded":          {Unbounded[int](), Unbounded[int](), false},
		"Inverted":           {Incl(5), Incl(1), true},
		"EmptyHalfOpen":      {Incl(5), Excl(5), true},
		"EmptyOpenClosed":    {Excl(5), Incl(5), true},
		"EmptyOpenAdjacent":  {Excl(5), Excl(6), true},
		"OpenWithGap":        {Excl(5), Excl(7), false},
		"ExclAtDomainMax":    {Excl(math.MaxInt), Unbounded[int](), true},
		"ExclAtDomainMin":    {Unbounded[int](), Excl(math.MinInt), true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(d, tc.start, tc.end)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrInvalidInterval)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestContains(t *testing.T) {
	d := Integers[int]()
	cases := map[string]struct {
		ival     Interval[int]
		point    int
		expected bool
	}{
		"ClosedInside":    {Closed(1, 5), 3, true},
		"ClosedStart":     {Closed(1, 5), 1, true},
		"ClosedEnd":       {Closed(1, 5), 5, true},
		"ClosedBefore":    {Closed(1, 5), 0, false},
		"ClosedAfter":     {Closed(1, 5), 6, false},
		"OpenStart":       {Open(1, 5), 1, false},
		"OpenEnd":         {Open(1, 5), 5, false},
		"OpenInside":      {Open(1, 5), 2, true},
		"AtLeastEdge":     {AtLeast(10), 10, true},
		"AtLeastBelow":    {AtLeast(10), 9, false},
		"LessThanEdge":    {LessThan(10), 10, false},
		"LessThanBelow":   {LessThan(10), 9, true},
		"AllAnything":     {All[int](), -42, true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.ival.Contains(d, tc.point); got != tc.expected {
				t.Errorf("%s: -want %t, +got: %t\n", name, tc.expected, got)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	d := Integers[int]()
	cases := map[string]struct {
		a        Interval[int]
		b        Interval[int]
		expected bool
	}{
		"Disjoint":            {Closed(1, 3), Closed(5, 7), false},
		"TouchingClosed":      {Closed(1, 3), Closed(4, 7), false},
		"TouchingHalfOpen":    {ClosedOpen(1, 3), Closed(3, 7), false},
		"SharedEndpoint":      {Closed(1, 3), Closed(3, 7), true},
		"Nested":              {Closed(1, 10), Closed(3, 5), true},
		"PartialOverlap":      {Closed(1, 5), Closed(3, 7), true},
		"UnboundedOverlap":    {AtMost(5), AtLeast(5), true},
		"UnboundedTouching":   {LessThan(5), AtLeast(5), false},
		"AllOverlapsEverything": {All[int](), Closed(3, 5), true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Overlaps(d, tc.b); got != tc.expected {
				t.Errorf("%s: -want %t, +got: %t\n", name, tc.expected, got)
			}
			if got := tc.b.Overlaps(d, tc.a); got != tc.expected {
				t.Errorf("%s reversed: -want %t, +got: %t\n", name, tc.expected, got)
			}
		})
	}
}

func TestTouches(t *testing.T) {
	d := Integers[int]()
	cases := map[string]struct {
		a        Interval[int]
		b        Interval[int]
		expected bool
	}{
		"ClosedSuccessor":   {Closed(1, 5), Closed(6, 9), true},
		"InclToExclSame":    {Closed(1, 5), OpenClosed(5, 9), true},
		"ExclToInclSame":    {ClosedOpen(1, 5), Closed(5, 9), true},
		"OpenOpenAdjacent":  {ClosedOpen(1, 5), GreaterThan(4), true},
		"ClosedWithGap":     {Closed(1, 5), Closed(7, 9), false},
		"Overlapping":       {Closed(1, 5), Closed(5, 9), false},
		"UnboundedNoTouch":  {AtMost(5), All[int](), false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Touches(d, tc.b); got != tc.expected {
				t.Errorf("%s: -want %t, +got: %t\n", name, tc.expected, got)
			}
			if got := tc.b.Touches(d, tc.a); got != tc.expected {
				t.Errorf("%s reversed: -want %t, +got: %t\n", name, tc.expected, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	cases := map[string]struct {
		ival     Interval[int]
		expected string
	}{
		"Closed":      {Closed(1, 5), "[1,5]"},
		"ClosedOpen":  {ClosedOpen(1, 5), "[1,5)"},
		"OpenClosed":  {OpenClosed(4, 7), "(4,7]"},
		"Open":        {Open(1, 5), "(1,5)"},
		"AtLeast":     {AtLeast(8), "[8,+inf)"},
		"AtMost":      {AtMost(3), "(-inf,3]"},
		"LessThan":    {LessThan(1), "(-inf,1)"},
		"All":         {All[int](), "(-inf,+inf)"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.ival.String(); got != tc.expected {
				t.Errorf("%s: -want %s, +got: %s\n", name, tc.expected, got)
			}
		})
	}
}

func TestRelations(t *testing.T) {
	d := Integers[int]()

	a := Closed(1, 3)
	b := Closed(5, 9)
	assert.True(t, a.EntirelyBefore(d, b))
	assert.False(t, b.EntirelyBefore(d, a))

	inner := Closed(6, 7)
	assert.True(t, inner.CoveredBy(d, b))
	assert.True(t, inner.InMiddleOf(d, b))
	assert.True(t, b.CoveredBy(d, b))
	assert.False(t, b.InMiddleOf(d, b))

	left := Closed(4, 6)
	assert.True(t, left.OverlapsStartOf(d, b))
	assert.False(t, left.OverlapsEndOf(d, b))

	right := Closed(7, 12)
	assert.True(t, right.OverlapsEndOf(d, b))
	assert.False(t, right.OverlapsStartOf(d, b))
}

func TestEnclose(t *testing.T) {
	d := Integers[int]()
	cases := map[string]struct {
		a        Interval[int]
		b        Interval[int]
		expected string
	}{
		"Disjoint":   {Closed(1, 3), Closed(7, 9), "[1,9]"},
		"Nested":     {Closed(1, 9), Closed(3, 5), "[1,9]"},
		"Unbounded":  {AtMost(5), Closed(3, 9), "(-inf,9]"},
		"MixedKinds": {ClosedOpen(1, 5), OpenClosed(3, 9), "[1,9]"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Enclose(d, tc.b).String(); got != tc.expected {
				t.Errorf("%s: -want %s, +got: %s\n", name, tc.expected, got)
			}
		})
	}
}

func TestIntegersDomain(t *testing.T) {
	d := Integers[uint8]()

	n, ok := d.Next(10)
	assert.True(t, ok)
	assert.Equal(t, uint8(11), n)

	_, ok = d.Next(math.MaxUint8)
	assert.False(t, ok)

	p, ok := d.Previous(10)
	assert.True(t, ok)
	assert.Equal(t, uint8(9), p)

	_, ok = d.Previous(0)
	assert.False(t, ok)

	sd := Integers[int8]()
	_, ok = sd.Next(math.MaxInt8)
	assert.False(t, ok)
	_, ok = sd.Previous(math.MinInt8)
	assert.False(t, ok)
}
