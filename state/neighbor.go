package state

import (
	"time"

	"github.com/vanterra-net/mospfd/netio"
)

// Neighbor is one entry discovered on an interface (spec §3). Alive counts
// down in whole seconds and is reset to NeighborTimeout on each HELLO.
type Neighbor struct {
	RID   RouterID
	IP    RouterID // neighbor's IPv4 on the shared link, reusing the same 32-bit packing
	Mask  IPv4Mask
	Alive int // seconds remaining
}

// Interface is spec §3's "Interface": IPv4 address, subnet mask, MAC, a
// hello interval, and the ordered list of neighbors discovered on it. Link
// is the external netio.Interface this record is paired with; the core
// only ever calls it through the netio.Interface interface (spec §1).
type Interface struct {
	Name          string
	IP            RouterID
	Mask          IPv4Mask
	HelloInterval time.Duration
	Neighbors     []*Neighbor

	// Link is the external collaborator this record is paired with; the
	// core only ever calls it through the netio.Interface abstraction
	// (spec §1), never a concrete socket or ARP type.
	Link netio.Interface
}

// FindNeighbor returns the neighbor with the given rid on this interface,
// or nil. Caller must hold core_lock.
func (i *Interface) FindNeighbor(rid RouterID) *Neighbor {
	for _, n := range i.Neighbors {
		if n.RID == rid {
			return n
		}
	}
	return nil
}

// RemoveNeighbor deletes the neighbor with the given rid, if present, and
// reports whether anything was removed. Caller must hold core_lock.
func (i *Interface) RemoveNeighbor(rid RouterID) bool {
	for idx, n := range i.Neighbors {
		if n.RID == rid {
			i.Neighbors = append(i.Neighbors[:idx], i.Neighbors[idx+1:]...)
			return true
		}
	}
	return false
}

// Subnet returns this interface's attached subnet, ip & mask.
func (i *Interface) Subnet() RouterID {
	return Subnet(i.IP, i.Mask)
}
