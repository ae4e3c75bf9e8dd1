package iprange

import (
	"fmt"
	"net/netip"
	"sync"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/rangemap/pkg/interval"
	"github.com/henderiw/rangemap/pkg/rangemap"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

type RouteTable interface {
	Get(addr string) (table.Route, error)
	Claim(rng string, d table.Route) error
	Release(rng string) error
	Update(rng string, d table.Route) error

	Count() int
	Has(addr string) bool

	IsFree(rng string) bool
	FindFree(n int) (netipx.IPRange, error)

	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

// New returns a route table handing out address ranges between from and
// to. Range inputs parse with netipx.ParseIPRange ("10.0.0.10-10.0.0.20").
func New(from, to netip.Addr) RouteTable {
	return &routeTable{
		m:       new(sync.RWMutex),
		d:       AddrDomain(),
		ipRange: netipx.IPRangeFrom(from, to),
		routes:  rangemap.New[netip.Addr, table.Route](AddrDomain(), nil),
	}
}

type routeTable struct {
	m       *sync.RWMutex
	d       interval.Domain[netip.Addr]
	ipRange netipx.IPRange
	routes  *rangemap.Map[netip.Addr, table.Route]
}

func (r *routeTable) validateRange(rng string) (interval.Interval[netip.Addr], error) {
	ipRange, err := netipx.ParseIPRange(rng)
	if err != nil {
		return interval.Interval[netip.Addr]{}, fmt.Errorf("ip range %s is invalid", rng)
	}
	if r.ipRange.From().Compare(ipRange.From()) > 0 || r.ipRange.To().Compare(ipRange.To()) < 0 {
		return interval.Interval[netip.Addr]{}, fmt.Errorf("ip range %s, does not fit in the range from %s to %s", rng, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return FromIPRange(ipRange), nil
}

func (r *routeTable) validateIP(addr string) (netip.Addr, error) {
	claimIP, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip address %s is invalid", addr)
	}
	if !r.ipRange.Contains(claimIP) {
		return netip.Addr{}, fmt.Errorf("ip address %s, does not fit in the range from %s to %s", addr, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return claimIP, nil
}

func (r *routeTable) Get(addr string) (table.Route, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	var route table.Route
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return route, err
	}
	route, ok := r.routes.Get(claimIP)
	if !ok {
		return route, fmt.Errorf("no match found for: %v", addr)
	}
	return route, nil
}

func (r *routeTable) Claim(rng string, d table.Route) error {
	r.m.Lock()
	defer r.m.Unlock()

	ival, err := r.validateRange(rng)
	if err != nil {
		return err
	}
	if err := r.routes.Insert(ival, d); err != nil {
		return fmt.Errorf("claim failed range %s already claimed", rng)
	}
	return nil
}

func (r *routeTable) Release(rng string) error {
	r.m.Lock()
	defer r.m.Unlock()

	ival, err := r.validateRange(rng)
	if err != nil {
		return err
	}
	removed, err := r.routes.Remove(ival)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return fmt.Errorf("release failed range %s not claimed", rng)
	}
	return nil
}

func (r *routeTable) Update(rng string, d table.Route) error {
	r.m.Lock()
	defer r.m.Unlock()

	ival, err := r.validateRange(rng)
	if err != nil {
		return err
	}
	if !r.hasExact(ival) {
		return fmt.Errorf("update failed range %s not claimed", rng)
	}
	return r.routes.InsertOverwrite(ival, d)
}

func (r *routeTable) hasExact(ival interval.Interval[netip.Addr]) bool {
	iter, err := r.routes.Overlapping(ival)
	if err != nil {
		return false
	}
	for iter.Next() {
		if iter.Entry().Interval().Equal(r.d, ival) {
			return true
		}
	}
	return false
}

func (r *routeTable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.routes.Len()
}

func (r *routeTable) Has(addr string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	claimIP, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	return r.routes.Has(claimIP)
}

func (r *routeTable) IsFree(rng string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	ival, err := r.validateRange(rng)
	if err != nil {
		return false
	}
	overlaps, err := r.routes.Overlaps(ival)
	if err != nil {
		return false
	}
	return !overlaps
}

func (r *routeTable) FindFree(n int) (netipx.IPRange, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	if n < 1 {
		return netipx.IPRange{}, fmt.Errorf("size %d must be at least 1", n)
	}
	iter, err := r.routes.Gaps(FromIPRange(r.ipRange))
	if err != nil {
		return netipx.IPRange{}, err
	}
	for iter.Next() {
		gap, err := ToIPRange(iter.Interval())
		if err != nil {
			continue
		}
		first := gap.From()
		last := first
		fits := true
		for i := 1; i < n; i++ {
			next := last.Next()
			if !next.IsValid() || !gap.Contains(next) {
				fits = false
				break
			}
			last = next
		}
		if fits {
			return netipx.IPRangeFrom(first, last), nil
		}
	}
	return netipx.IPRange{}, fmt.Errorf("no free range of size %d found", n)
}

func (r *routeTable) GetAll() table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	var routes table.Routes
	iter := r.routes.Iterate()
	for iter.Next() {
		routes = append(routes, iter.Entry().Value())
	}
	return routes
}

func (r *routeTable) GetByLabel(selector labels.Selector) table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	var routes table.Routes
	iter := r.routes.Iterate()
	for iter.Next() {
		route := iter.Entry().Value()
		if selector.Matches(route.Labels()) {
			routes = append(routes, route)
		}
	}
	return routes
}
