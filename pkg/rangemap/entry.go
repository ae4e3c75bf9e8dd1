package rangemap

import (
	"fmt"

	"github.com/henderiw/rangemap/pkg/interval"
)

type Entry[E, V any] interface {
	Interval() interval.Interval[E]
	Value() V
	String() string
}

type entry[E, V any] struct {
	ival  interval.Interval[E]
	value V
}

type Entries[E, V any] []Entry[E, V]

func (r entry[E, V]) Interval() interval.Interval[E] { return r.ival }
func (r entry[E, V]) Value() V                       { return r.value }
func (r entry[E, V]) String() string {
	return fmt.Sprintf("interval: %s, value: %v", r.ival, r.value)
}

func NewEntry[E, V any](ival interval.Interval[E], value V) Entry[E, V] {
	return entry[E, V]{
		ival:  ival,
		value: value,
	}
}
