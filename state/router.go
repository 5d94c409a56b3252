package state

import (
	"encoding/binary"
	"net"
)

// RouterID is a 32-bit router identifier, conventionally the IPv4 address of
// a router's first configured interface.
type RouterID uint32

// RouterIDFromIP packs the first four bytes of a IPv4 address into a RouterID.
func RouterIDFromIP(ip net.IP) RouterID {
	v4 := ip.To4()
	if v4 == nil {
		return 0
	}
	return RouterID(binary.BigEndian.Uint32(v4))
}

func (r RouterID) IP() net.IP {
	b := make(net.IP, 4)
	binary.BigEndian.PutUint32(b, uint32(r))
	return b
}

func (r RouterID) String() string {
	return r.IP().String()
}

// IPv4Mask is a 32-bit subnet mask, stored the same way as a RouterID so the
// two can be combined with plain bitwise ops (ip & mask) as spec'd.
type IPv4Mask uint32

func IPv4MaskFromIP(ip net.IP) IPv4Mask {
	v4 := ip.To4()
	if v4 == nil {
		return 0
	}
	return IPv4Mask(binary.BigEndian.Uint32(v4))
}

func (m IPv4Mask) IP() net.IP {
	b := make(net.IP, 4)
	binary.BigEndian.PutUint32(b, uint32(m))
	return b
}

// PrefixLen returns the number of leading one-bits in the mask.
func (m IPv4Mask) PrefixLen() int {
	n := 0
	for i := 31; i >= 0; i-- {
		if uint32(m)&(1<<uint(i)) == 0 {
			break
		}
		n++
	}
	return n
}

// Subnet applies the mask to an address, following the iface.ip & iface.mask
// convention used throughout spec §4.3.
func Subnet(addr RouterID, mask IPv4Mask) RouterID {
	return RouterID(uint32(addr) & uint32(mask))
}
