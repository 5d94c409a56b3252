package daemon

import (
	"time"

	"github.com/vanterra-net/mospfd/state"
)

// runNeighborMonitor is spec §4.2: once per second, decrement every
// neighbor's alive counter under core_lock; a neighbor whose counter
// reaches zero is removed and topology_dirty is set.
func (d *Daemon) runNeighborMonitor() {
	for {
		d.Core.Lock()
		d.ageNeighbors()
		d.Core.Unlock()

		if !d.sleepUnlocked(time.Second) {
			return
		}
	}
}

// ageNeighbors decrements every neighbor's alive by one and reaps expired
// ones. Caller must hold core_lock.
func (d *Daemon) ageNeighbors() {
	for _, iface := range d.Core.Interfaces {
		var expired []state.RouterID
		for _, n := range iface.Neighbors {
			n.Alive--
			if n.Alive <= 0 {
				expired = append(expired, n.RID)
			}
		}
		for _, rid := range expired {
			d.Log.Info("neighbor expired", "iface", iface.Name, "rid", rid)
			iface.RemoveNeighbor(rid)
			d.Core.TopologyDirty = true
		}
	}
}
