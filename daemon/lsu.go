package daemon

import (
	"time"

	"github.com/vanterra-net/mospfd/perf"
	"github.com/vanterra-net/mospfd/state"
	"github.com/vanterra-net/mospfd/wire"
)

// runLSUGenerator is spec §4.3: each second, atomically check whether
// topology_dirty is set or left_interval has reached zero; on either
// condition, rebuild and flood the self-LSA, then run SPF.
func (d *Daemon) runLSUGenerator() {
	for {
		d.Core.Lock()
		d.Core.LeftInterval -= time.Second
		trigger := d.Core.TopologyDirty || d.Core.LeftInterval <= 0
		if trigger {
			d.floodSelfLSU()
			// SPF runs while core_lock is still held, then nests
			// rt_lock inside it (§5's lock order: core_lock -> rt_lock).
			d.runSPF()
		}
		d.Core.Unlock()

		if !d.sleepUnlocked(time.Second) {
			return
		}
	}
}

// floodSelfLSU is spec §4.3 steps 1-4. Caller must hold core_lock.
func (d *Daemon) floodSelfLSU() {
	d.Core.TopologyDirty = false
	d.Core.LeftInterval = d.Core.LSUInt

	lsas := buildSelfLSAs(d.Core.Interfaces)

	d.Core.SeqNum++
	self := d.Core.FindLSDBEntry(d.Core.RouterID)
	if self == nil {
		self = &state.LSDBEntry{RID: d.Core.RouterID}
		d.Core.LSDB = append(d.Core.LSDB, self)
	}
	self.Seq = d.Core.SeqNum
	self.LSAs = lsas

	d.floodLSUToAllNeighbors(self, state.MaxLSUTTL, nil)
}

// buildSelfLSAs is spec §4.3 step 2: one LSA per interface if it has no
// neighbors, otherwise one LSA per neighbor on it.
func buildSelfLSAs(interfaces []*state.Interface) []state.LSA {
	var lsas []state.LSA
	for _, iface := range interfaces {
		if len(iface.Neighbors) == 0 {
			lsas = append(lsas, state.LSA{
				Subnet:         iface.Subnet(),
				Mask:           iface.Mask,
				AdvertisingRID: 0,
			})
			continue
		}
		for _, n := range iface.Neighbors {
			lsas = append(lsas, state.LSA{
				Subnet:         state.Subnet(n.IP, n.Mask),
				Mask:           n.Mask,
				AdvertisingRID: n.RID,
			})
		}
	}
	return lsas
}

// floodLSUToAllNeighbors sends entry as a unicast LSU with the given TTL to
// every neighbor on every interface, skipping skipIface (nil when
// originating locally, the receiving interface when re-flooding per
// §4.4). Caller must hold core_lock.
func (d *Daemon) floodLSUToAllNeighbors(entry *state.LSDBEntry, ttl uint8, skipIface *state.Interface) {
	// Flood suppression (supplemental, not part of §4.3's acceptance
	// rules): if this exact (rid, seq) was already put on the wire very
	// recently - by the dispatcher's re-flood path, or by this same call
	// racing another thread - don't send it again.
	key := floodKey(entry.RID, entry.Seq)
	if d.floodSeen.Get(key) != nil {
		perf.LSUSuppressedCount.Add(1)
		return
	}
	d.floodSeen.Set(key, struct{}{}, floodSuppressWindow)

	wireLSAs := make(wire.LSAs, len(entry.LSAs))
	for i, l := range entry.LSAs {
		wireLSAs[i] = wire.LSA{
			Subnet:         uint32(l.Subnet),
			Mask:           uint32(l.Mask),
			AdvertisingRID: uint32(l.AdvertisingRID),
		}
	}

	for _, iface := range d.Core.Interfaces {
		if iface == skipIface {
			continue
		}
		for _, n := range iface.Neighbors {
			buf, err := wire.BuildLSU(uint32(entry.RID), d.Core.AreaID, entry.Seq, ttl, wireLSAs)
			if err != nil {
				d.Log.Error("lsu: build failed", "err", err)
				continue
			}
			if iface.Link == nil {
				continue
			}
			if err := iface.Link.SendTo(n.IP.IP(), buf); err != nil {
				d.Log.Error("lsu: send failed", "iface", iface.Name, "neighbor", n.RID, "err", err)
				continue
			}
			perf.LSUFloodedCount.Add(1)
		}
	}
}
