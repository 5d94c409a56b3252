package daemon

import (
	"github.com/vanterra-net/mospfd/perf"
	"github.com/vanterra-net/mospfd/state"
	"github.com/vanterra-net/mospfd/wire"
)

// runHelloEmitter is spec §4.1: every HELLO_INTERVAL seconds, walk every
// interface under core_lock and multicast one HELLO frame on each.
func (d *Daemon) runHelloEmitter() {
	for {
		d.Core.Lock()
		d.emitHellos()
		d.Core.Unlock()

		if !d.sleepUnlocked(d.HelloInterval) {
			return
		}
	}
}

// emitHellos builds and sends one HELLO per interface. Caller must hold
// core_lock: "the full iteration across interfaces occurs under the lock".
func (d *Daemon) emitHellos() {
	for _, iface := range d.Core.Interfaces {
		buf, err := wire.BuildHello(
			uint32(d.Core.RouterID),
			d.Core.AreaID,
			uint32(iface.Mask),
			uint16(iface.HelloInterval.Seconds()),
		)
		if err != nil {
			d.Log.Error("hello: build failed", "iface", iface.Name, "err", err)
			continue
		}
		if iface.Link == nil {
			continue
		}
		if err := iface.Link.Send(buf); err != nil {
			d.Log.Error("hello: send failed", "iface", iface.Name, "err", err)
			continue
		}
		perf.HelloTxCount.Add(1)
	}

	d.helloTicks++
	if d.helloTicks%state.HelloDumpEvery == 0 {
		d.dumpRouteTable()
	}
}

// dumpRouteTable is the debugging aid §4.1 calls for, "not part of the
// protocol" — written through the structured logger rather than stdout so
// it composes with the ambient logging stack. Gated on --ltable, the way
// the teacher's dbgPrintRouteTable gates on DBG_log_route_table.
func (d *Daemon) dumpRouteTable() {
	if !state.DebugLogRouteTable {
		return
	}
	entries := d.Core.RT.Snapshot()
	d.Log.Debug("routing table", "entries", len(entries))
	for _, e := range entries {
		d.Log.Debug("rt entry",
			"dest", e.Dest,
			"next_hop", e.NextHop,
			"iface", e.Iface,
			"distance", e.Distance,
		)
	}
}
