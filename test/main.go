package main

import (
	"encoding/json"
	"fmt"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/rangemap/pkg/interval"
	"github.com/henderiw/rangemap/pkg/iprange"
	"github.com/henderiw/rangemap/pkg/rangemap"
	"github.com/henderiw/rangemap/pkg/rangeset"
	"github.com/henderiw/rangemap/pkg/rangetable"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

func main() {
	d := interval.Integers[int]()

	m := rangemap.New[int, string](d, nil)
	handleErr(m.InsertOverwrite(interval.Closed(1, 5), "a"))
	handleErr(m.InsertOverwrite(interval.Closed(3, 7), "b"))
	fmt.Println("map", m)

	if _, err := m.Remove(interval.ClosedOpen(2, 4)); err != nil {
		panic(err)
	}
	fmt.Println("map after remove", m)

	gaps, err := m.Gaps(interval.All[int]())
	handleErr(err)
	for gaps.Next() {
		fmt.Println("gap", gaps.Interval())
	}

	data, err := json.Marshal(m)
	handleErr(err)
	fmt.Println("json", string(data))

	s := rangeset.New(d)
	handleErr(s.InsertCoalescing(interval.Closed(1, 4)))
	handleErr(s.InsertCoalescing(interval.Closed(5, 9)))
	fmt.Println("set", s)

	other := rangeset.New(d)
	handleErr(other.Insert(interval.Closed(7, 12)))
	fmt.Println("union", s.Union(other))
	fmt.Println("difference", s.Difference(other))

	vlans, err := rangetable.New(interval.Integers[uint16](), interval.Closed[uint16](0, 4095))
	handleErr(err)
	handleErr(vlans.Claim(interval.Closed[uint16](100, 199), map[string]string{"tenant": "red"}))
	e, err := vlans.ClaimFree(50, map[string]string{"tenant": "blue"})
	handleErr(err)
	fmt.Println("claimed", e.Interval(), e.Value())

	selector, err := getLabelSelector(map[string]string{"tenant": "red"})
	handleErr(err)
	for _, e := range vlans.GetByLabel(selector) {
		fmt.Println("by label", e)
	}

	ipRange, err := netipx.ParseIPRange("10.0.0.10-10.0.0.100")
	handleErr(err)
	rt := iprange.New(ipRange.From(), ipRange.To())
	handleErr(rt.Claim("10.0.0.20-10.0.0.29", table.Route{}))
	free, err := rt.FindFree(5)
	handleErr(err)
	fmt.Println("free ip range", free)
}

func handleErr(err error) {
	if err != nil {
		panic(err)
	}
}

func getLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
