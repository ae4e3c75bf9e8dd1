package rangemap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangemap/pkg/interval"
	"github.com/stretchr/testify/assert"
)

func buildMap(t *testing.T, entries map[string]interval.Interval[int]) *Map[int, string] {
	t.Helper()
	r := New[int, string](interval.Integers[int](), nil)
	for v, ival := range entries {
		assert.NoError(t, r.Insert(ival, v))
	}
	return r
}

func TestUnion(t *testing.T) {
	cases := map[string]struct {
		a        map[string]interval.Interval[int]
		b        map[string]interval.Interval[int]
		expected []string
	}{
		"Disjoint": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 3)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(7, 9)},
			expected: []string{"[1,3]:a", "[7,9]:b"},
		},
		"SecondOperandWinsOnOverlap": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 9)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(4, 6)},
			expected: []string{"[1,4):a", "[4,6]:b", "(6,9]:a"},
		},
		"TouchingEqualValuesCoalesce": {
			a:        map[string]interval.Interval[int]{"x": interval.Closed(1, 4)},
			b:        map[string]interval.Interval[int]{"x": interval.Closed(5, 9)},
			expected: []string{"[1,9]:x"},
		},
		"OverlapEqualValuesCoalesce": {
			a:        map[string]interval.Interval[int]{"x": interval.Closed(1, 6)},
			b:        map[string]interval.Interval[int]{"x": interval.Closed(4, 9)},
			expected: []string{"[1,9]:x"},
		},
		"EmptyLeft": {
			b:        map[string]interval.Interval[int]{"b": interval.Closed(1, 5)},
			expected: []string{"[1,5]:b"},
		},
		"EmptyRight": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 5)},
			expected: []string{"[1,5]:a"},
		},
		"UnboundedOperand": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 5)},
			b:        map[string]interval.Interval[int]{"b": interval.AtLeast(3)},
			expected: []string{"[1,3):a", "[3,+inf):b"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			a := buildMap(t, tc.a)
			b := buildMap(t, tc.b)
			got := a.Union(b)
			if diff := cmp.Diff(tc.expected, dump(got)); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestIntersection(t *testing.T) {
	cases := map[string]struct {
		a        map[string]interval.Interval[int]
		b        map[string]interval.Interval[int]
		expected []string
	}{
		"Disjoint": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 3)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(7, 9)},
			expected: []string{},
		},
		"Touching": {
			a:        map[string]interval.Interval[int]{"a": interval.ClosedOpen(1, 5)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(5, 9)},
			expected: []string{},
		},
		"ClampBothSides": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 9)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(4, 12)},
			expected: []string{"[4,9]:a"},
		},
		"ReceiverValueKept": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 9)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(1, 9)},
			expected: []string{"[1,9]:a"},
		},
		"OneCoversMany": {
			a: map[string]interval.Interval[int]{
				"a": interval.Closed(1, 3),
				"b": interval.Closed(5, 7),
				"c": interval.Closed(9, 11),
			},
			b:        map[string]interval.Interval[int]{"x": interval.Closed(2, 10)},
			expected: []string{"[2,3]:a", "[5,7]:b", "[9,10]:c"},
		},
		"MixedBoundKinds": {
			a:        map[string]interval.Interval[int]{"a": interval.ClosedOpen(1, 6)},
			b:        map[string]interval.Interval[int]{"b": interval.OpenClosed(3, 9)},
			expected: []string{"(3,6):a"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			a := buildMap(t, tc.a)
			b := buildMap(t, tc.b)
			got := a.Intersection(b)
			if diff := cmp.Diff(tc.expected, dump(got)); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestDifference(t *testing.T) {
	cases := map[string]struct {
		a        map[string]interval.Interval[int]
		b        map[string]interval.Interval[int]
		expected []string
	}{
		"Disjoint": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 3)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(7, 9)},
			expected: []string{"[1,3]:a"},
		},
		"HolePunched": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 9)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(4, 6)},
			expected: []string{"[1,4):a", "(6,9]:a"},
		},
		"FullyCovered": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 9)},
			b:        map[string]interval.Interval[int]{"b": interval.Closed(0, 10)},
			expected: []string{},
		},
		"OneSubtrahendAcrossTwoEntries": {
			a: map[string]interval.Interval[int]{
				"a": interval.Closed(1, 5),
				"b": interval.Closed(8, 12),
			},
			b:        map[string]interval.Interval[int]{"x": interval.Closed(4, 9)},
			expected: []string{"[1,4):a", "(9,12]:b"},
		},
		"UnboundedSubtrahend": {
			a:        map[string]interval.Interval[int]{"a": interval.Closed(1, 9)},
			b:        map[string]interval.Interval[int]{"x": interval.AtLeast(5)},
			expected: []string{"[1,5):a"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			a := buildMap(t, tc.a)
			b := buildMap(t, tc.b)
			got := a.Difference(b)
			if diff := cmp.Diff(tc.expected, dump(got)); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestSymmetricDifference(t *testing.T) {
	a := buildMap(t, map[string]interval.Interval[int]{"a": interval.Closed(1, 6)})
	b := buildMap(t, map[string]interval.Interval[int]{"b": interval.Closed(4, 9)})

	expected := []string{"[1,4):a", "(6,9]:b"}
	if diff := cmp.Diff(expected, dump(a.SymmetricDifference(b))); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
	// commutative up to values
	expectedRev := []string{"[1,4):a", "(6,9]:b"}
	if diff := cmp.Diff(expectedRev, dump(b.SymmetricDifference(a))); diff != "" {
		t.Errorf("reversed: -want, +got:\n%s", diff)
	}
}

// Point-set laws checked by sampling: union coverage is commutative,
// intersection covers exactly the common points, and difference plus
// intersection plus reverse difference reconstructs the union coverage.
func TestSetAlgebraLaws(t *testing.T) {
	a := buildMap(t, map[string]interval.Interval[int]{
		"a1": interval.ClosedOpen(0, 4),
		"a2": interval.Closed(6, 10),
		"a3": interval.OpenClosed(13, 17),
	})
	b := buildMap(t, map[string]interval.Interval[int]{
		"b1": interval.Closed(2, 7),
		"b2": interval.ClosedOpen(9, 14),
		"b3": interval.Closed(20, 25),
	})

	union := a.Union(b)
	unionRev := b.Union(a)
	inter := a.Intersection(b)
	diffAB := a.Difference(b)
	diffBA := b.Difference(a)
	sym := a.SymmetricDifference(b)
	symRev := b.SymmetricDifference(a)

	for p := -2; p <= 28; p++ {
		inA, inB := a.Has(p), b.Has(p)
		assert.Equal(t, inA || inB, union.Has(p), "union point %d", p)
		assert.Equal(t, union.Has(p), unionRev.Has(p), "union commutativity point %d", p)
		assert.Equal(t, inA && inB, inter.Has(p), "intersection point %d", p)
		assert.Equal(t, inA && !inB, diffAB.Has(p), "difference point %d", p)
		assert.Equal(t, inB && !inA, diffBA.Has(p), "reverse difference point %d", p)
		assert.Equal(t, inA != inB, sym.Has(p), "symmetric difference point %d", p)
		assert.Equal(t, sym.Has(p), symRev.Has(p), "symmetric difference commutativity point %d", p)
		recon := diffAB.Has(p) || inter.Has(p) || diffBA.Has(p)
		assert.Equal(t, union.Has(p), recon, "reconstruction point %d", p)
	}
}

func TestSetAlgebraWithEmptyOperand(t *testing.T) {
	a := buildMap(t, map[string]interval.Interval[int]{"a": interval.Closed(1, 5)})
	empty := New[int, string](interval.Integers[int](), nil)

	assert.Equal(t, "{[1,5]:a}", a.Union(empty).String())
	assert.Equal(t, "{[1,5]:a}", empty.Union(a).String())
	assert.True(t, a.Intersection(empty).IsEmpty())
	assert.True(t, empty.Intersection(a).IsEmpty())
	assert.Equal(t, "{[1,5]:a}", a.Difference(empty).String())
	assert.True(t, empty.Difference(a).IsEmpty())
	assert.Equal(t, "{[1,5]:a}", a.SymmetricDifference(empty).String())
}
