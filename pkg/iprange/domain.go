package iprange

import (
	"fmt"
	"net/netip"

	"github.com/henderiw/rangemap/pkg/interval"
	"go4.org/netipx"
)

type addrDomain struct{}

// AddrDomain returns the discreteness contract for netip.Addr. Successor
// and predecessor stop at the edges of the address family (netip yields
// the invalid Addr there).
func AddrDomain() interval.Domain[netip.Addr] {
	return addrDomain{}
}

func (addrDomain) Compare(a, b netip.Addr) int {
	return a.Compare(b)
}

func (addrDomain) Next(v netip.Addr) (netip.Addr, bool) {
	n := v.Next()
	return n, n.IsValid()
}

func (addrDomain) Previous(v netip.Addr) (netip.Addr, bool) {
	p := v.Prev()
	return p, p.IsValid()
}

// FromIPRange converts a netipx range into the equivalent closed
// interval.
func FromIPRange(r netipx.IPRange) interval.Interval[netip.Addr] {
	return interval.Closed(r.From(), r.To())
}

// ToIPRange converts an interval into a netipx range. Exclusive bounds
// are normalized to their inclusive neighbor; unbounded intervals have
// no IPRange form.
func ToIPRange(ival interval.Interval[netip.Addr]) (netipx.IPRange, error) {
	d := AddrDomain()
	if !ival.IsValid(d) {
		return netipx.IPRange{}, fmt.Errorf("range %s: %w", ival, interval.ErrInvalidInterval)
	}
	var from, to netip.Addr
	switch ival.Start.Kind() {
	case interval.BoundIncluded:
		from = ival.Start.Value()
	case interval.BoundExcluded:
		from = ival.Start.Value().Next()
	default:
		return netipx.IPRange{}, fmt.Errorf("range %s is unbounded", ival)
	}
	switch ival.End.Kind() {
	case interval.BoundIncluded:
		to = ival.End.Value()
	case interval.BoundExcluded:
		to = ival.End.Value().Prev()
	default:
		return netipx.IPRange{}, fmt.Errorf("range %s is unbounded", ival)
	}
	return netipx.IPRangeFrom(from, to), nil
}
