package decoder

import (
	"net/netip"
)

const (
	ipv4Len     = 4
	ipv6Len     = 16
	ipv4PairLen = 2 * ipv4Len
)

// IPv4Pair is two consecutive IPv4 addresses, e.g. a policy filter entry or
// a static route (destination, router).
type IPv4Pair struct {
	First  netip.Addr
	Second netip.Addr
}

// ReadIPv4 reads a single address. length is the option length from the
// wire and must be exactly 4.
func (d *Decoder) ReadIPv4(length int) (netip.Addr, error) {
	if length != ipv4Len {
		return netip.Addr{}, ErrNotEnoughBytes
	}
	var b [ipv4Len]byte
	if err := d.ReadArray(b[:]); err != nil {
		return netip.Addr{}, err
	}
	return netip.AddrFrom4(b), nil
}

// ReadIPv4s reads length/4 addresses in wire order.
func (d *Decoder) ReadIPv4s(length int) ([]netip.Addr, error) {
	raw, err := d.records(length, ipv4Len)
	if err != nil {
		return nil, err
	}
	addrs := make([]netip.Addr, 0, len(raw)/ipv4Len)
	for i := 0; i < len(raw); i += ipv4Len {
		addrs = append(addrs, netip.AddrFrom4([ipv4Len]byte(raw[i:i+ipv4Len])))
	}
	return addrs, nil
}

// ReadIPv6s reads length/16 addresses in wire order.
func (d *Decoder) ReadIPv6s(length int) ([]netip.Addr, error) {
	raw, err := d.records(length, ipv6Len)
	if err != nil {
		return nil, err
	}
	addrs := make([]netip.Addr, 0, len(raw)/ipv6Len)
	for i := 0; i < len(raw); i += ipv6Len {
		addrs = append(addrs, netip.AddrFrom16([ipv6Len]byte(raw[i:i+ipv6Len])))
	}
	return addrs, nil
}

// ReadPairIPv4s reads length/8 address pairs in wire order.
func (d *Decoder) ReadPairIPv4s(length int) ([]IPv4Pair, error) {
	raw, err := d.records(length, ipv4PairLen)
	if err != nil {
		return nil, err
	}
	pairs := make([]IPv4Pair, 0, len(raw)/ipv4PairLen)
	for i := 0; i < len(raw); i += ipv4PairLen {
		pairs = append(pairs, IPv4Pair{
			First:  netip.AddrFrom4([ipv4Len]byte(raw[i : i+ipv4Len])),
			Second: netip.AddrFrom4([ipv4Len]byte(raw[i+ipv4Len : i+ipv4PairLen])),
		})
	}
	return pairs, nil
}

func (d *Decoder) records(length, size int) ([]byte, error) {
	if length < 0 || length%size != 0 {
		return nil, ErrNotEnoughBytes
	}
	return d.fixed(length)
}
