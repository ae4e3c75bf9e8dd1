package interval

import (
	"golang.org/x/exp/constraints"
)

// Domain supplies the discreteness contract for an ordered value type:
// total order plus successor and predecessor. Next and Previous return
// false at the domain maximum and minimum respectively.
type Domain[E any] interface {
	Compare(a, b E) int
	Next(v E) (E, bool)
	Previous(v E) (E, bool)
}

type integers[E constraints.Integer] struct{}

// Integers returns the built-in domain for any integer type. Successor and
// predecessor saturate at the type's limits.
func Integers[E constraints.Integer]() Domain[E] {
	return integers[E]{}
}

func (integers[E]) Compare(a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (integers[E]) Next(v E) (E, bool) {
	n := v + 1
	if n < v {
		// wrapped, v is the type maximum
		return n, false
	}
	return n, true
}

func (integers[E]) Previous(v E) (E, bool) {
	p := v - 1
	if p > v {
		// wrapped, v is the type minimum
		return p, false
	}
	return p, true
}
