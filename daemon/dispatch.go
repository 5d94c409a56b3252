package daemon

import (
	"github.com/vanterra-net/mospfd/perf"
	"github.com/vanterra-net/mospfd/state"
	"github.com/vanterra-net/mospfd/wire"
)

// runDispatcher is the external packet-reception thread §5 names: it
// blocks on iface.Link.Recv() and calls dispatch for every frame received
// on that interface.
func (d *Daemon) runDispatcher(iface *state.Interface) {
	for {
		select {
		case buf, ok := <-iface.Link.Recv():
			if !ok {
				return
			}
			d.dispatch(iface, buf)
		case <-d.ctx.Done():
			return
		}
	}
}

// dispatch is spec §4.4: validate, then route by type. An accepted LSU
// re-runs SPF before core_lock is released.
func (d *Daemon) dispatch(iface *state.Interface, buf []byte) {
	var hdr wire.Header
	if err := hdr.UnmarshalBinary(buf); err != nil {
		d.Log.Error("dispatch: malformed header", "iface", iface.Name, "err", err)
		return
	}
	if hdr.Version != state.WireVersion {
		d.Log.Error("dispatch: version mismatch", "iface", iface.Name, "version", hdr.Version)
		return
	}
	if !wire.VerifyChecksum(buf) {
		d.Log.Error("dispatch: checksum mismatch", "iface", iface.Name, "rid", hdr.RouterID)
		return
	}
	if hdr.AreaID != d.Core.AreaID {
		d.Log.Error("dispatch: area mismatch", "iface", iface.Name, "area", hdr.AreaID)
		return
	}

	d.Core.Lock()
	switch hdr.Type {
	case wire.TypeHello:
		d.handleHello(iface, hdr, buf[wire.HeaderLen:])
	case wire.TypeLSU:
		if d.handleLSU(iface, hdr, buf[wire.HeaderLen:]) {
			// SPF re-runs on the receive path too (§9's open question,
			// resolved: implemented), nesting rt_lock inside core_lock.
			d.runSPF()
		}
	default:
		d.Log.Error("dispatch: unknown packet type", "iface", iface.Name, "type", hdr.Type)
	}
	d.Core.Unlock()
}

// handleHello is spec §4.4's HELLO handling. Caller must hold core_lock.
func (d *Daemon) handleHello(iface *state.Interface, hdr wire.Header, payload []byte) {
	var hello wire.Hello
	if err := hello.UnmarshalBinary(payload); err != nil {
		d.Log.Error("dispatch: malformed hello", "iface", iface.Name, "err", err)
		return
	}
	perf.HelloRxCount.Add(1)

	rid := state.RouterID(hdr.RouterID)
	timeout := int(d.NeighborTimeout.Seconds())

	if n := iface.FindNeighbor(rid); n != nil {
		n.Alive = timeout
		return
	}

	iface.Neighbors = append(iface.Neighbors, &state.Neighbor{
		RID:   rid,
		IP:    rid, // the HELLO's IP source equals its advertised router id (no NAT between mOSPF peers)
		Mask:  state.IPv4Mask(hello.Mask),
		Alive: timeout,
	})
	d.Core.TopologyDirty = true
	d.Log.Info("neighbor discovered", "iface", iface.Name, "rid", rid)
}

// handleLSU is spec §4.4's LSU handling. Caller must hold core_lock.
// Returns true if the LSDB changed and SPF should be re-run.
func (d *Daemon) handleLSU(iface *state.Interface, hdr wire.Header, payload []byte) bool {
	var lsuHdr wire.LSUHeader
	if err := lsuHdr.UnmarshalBinary(payload); err != nil {
		d.Log.Error("dispatch: malformed lsu header", "iface", iface.Name, "err", err)
		return false
	}
	lsas, err := wire.UnmarshalLSAs(payload[wire.LSULen:], lsuHdr.Nadv)
	if err != nil {
		d.Log.Error("dispatch: malformed lsa array", "iface", iface.Name, "err", err)
		return false
	}

	rid := state.RouterID(hdr.RouterID)
	entry := d.Core.FindLSDBEntry(rid)
	if entry == nil {
		entry = &state.LSDBEntry{RID: rid, Seq: 0}
		d.Core.LSDB = append(d.Core.LSDB, entry)
	}
	if lsuHdr.Seqno <= entry.Seq {
		perf.LSURejectedCount.Add(1)
		d.Log.Debug("lsu: stale sequence dropped", "rid", rid, "seq", lsuHdr.Seqno, "have", entry.Seq)
		return false
	}

	entry.Seq = lsuHdr.Seqno
	entry.LSAs = make([]state.LSA, len(lsas))
	for i, l := range lsas {
		entry.LSAs[i] = state.LSA{
			Subnet:         state.RouterID(l.Subnet),
			Mask:           state.IPv4Mask(l.Mask),
			AdvertisingRID: state.RouterID(l.AdvertisingRID),
		}
	}
	perf.LSUAcceptedCount.Add(1)

	// §4.4 always decrements and re-floods, with no minimum TTL to stop
	// at; a packet that arrives with TTL already at 0 just re-floods at 0
	// rather than being dropped here.
	ttl := lsuHdr.TTL
	if ttl > 0 {
		ttl--
	}
	d.floodLSUToAllNeighbors(entry, ttl, iface)

	return true
}
