// Package rtable is the concrete body behind the "external routing-table
// component" spec §3 and §6 describe: the core constructs entries and hands
// them over through ClearTable/InitTable/NewEntry/AddEntry, never reaching
// into the container directly. Backed by a BART prefix trie, generalized
// from the teacher's bart.Table[RouteTableEntry] forwarding table.
package rtable

import (
	"net/netip"
	"sync"

	"github.com/gaissmai/bart"
	"github.com/vanterra-net/mospfd/state"
)

// Entry is one routing-table row, matching spec §3's "Routing table entry"
// verbatim: destination subnet (as dest/mask folded into a netip.Prefix),
// next-hop router id (0 for directly attached), egress interface name, and
// distance in hops.
type Entry struct {
	Dest     netip.Prefix
	NextHop  state.RouterID
	Iface    string
	Distance uint32
}

// Table is the rt_lock-protected forwarding table (spec §5: "protected by
// a separate mutex rt_lock... lock order: core_lock then rt_lock").
type Table struct {
	mu sync.Mutex
	bt *bart.Table[Entry]
}

func New() *Table {
	return &Table{bt: new(bart.Table[Entry])}
}

// Lock/Unlock expose rt_lock directly for callers (the SPF builder) that
// need to hold it across a clear-then-rebuild sequence, per §5's ordering
// rule core_lock -> rt_lock.
func (t *Table) Lock()   { t.mu.Lock() }
func (t *Table) Unlock() { t.mu.Unlock() }

// ClearTable empties the table. Caller must hold the lock.
func (t *Table) ClearTable() {
	t.bt = new(bart.Table[Entry])
}

// InitTable resets the table and installs a default gateway entry if gw is
// non-zero, matching §6's "init_rtable (installs default gateway if any)".
// Caller must hold the lock.
func (t *Table) InitTable(defaultGW state.RouterID, defaultIface string) {
	t.ClearTable()
	if defaultGW != 0 {
		t.bt.Insert(netip.PrefixFrom(netip.IPv4Unspecified(), 0), Entry{
			Dest:    netip.PrefixFrom(netip.IPv4Unspecified(), 0),
			NextHop: defaultGW,
			Iface:   defaultIface,
		})
	}
}

// NewEntry constructs an Entry from host-order fields, following §6's
// new_rt_entry collaborator.
func NewEntry(destSubnet, mask uint32, nextHop state.RouterID, iface string, distance uint32) Entry {
	addr := state.RouterID(destSubnet).IP()
	bits := state.IPv4Mask(mask).PrefixLen()
	a, _ := netip.AddrFromSlice(addr.To4())
	return Entry{
		Dest:     netip.PrefixFrom(a.Unmap(), bits),
		NextHop:  nextHop,
		Iface:    iface,
		Distance: distance,
	}
}

// AddEntry installs or overwrites e, keyed by its destination prefix.
// Caller must hold the lock.
func (t *Table) AddEntry(e Entry) {
	t.bt.Insert(e.Dest, e)
}

// Lookup finds the entry whose destination exactly matches dest (used by
// the SPF builder's "look for an existing RT entry" step, §4.5).
func (t *Table) Lookup(dest netip.Prefix) (Entry, bool) {
	return t.bt.Get(dest)
}

// LookupAddr performs a longest-prefix-match lookup, the operation a real
// forwarding path would use; unlike Lookup it is not part of the protocol
// semantics in spec §4.5, only of the container's practical use.
func (t *Table) LookupAddr(addr netip.Addr) (Entry, bool) {
	return t.bt.Lookup(addr)
}

// Snapshot returns every installed entry, for the HELLO emitter's periodic
// debug dump (§4.1) and for tests.
func (t *Table) Snapshot() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, 0)
	for _, e := range t.bt.All() {
		out = append(out, e)
	}
	return out
}
