package daemon

import (
	"net/netip"
	"time"

	"github.com/vanterra-net/mospfd/perf"
	"github.com/vanterra-net/mospfd/rtable"
	"github.com/vanterra-net/mospfd/state"
)

const maxDist = 1<<31 - 1 // MAX_DIST, §4.5

// runSPF is spec §4.5. Caller must already hold core_lock; runSPF itself
// acquires rt_lock, honoring the strict core_lock -> rt_lock order §5
// mandates.
func (d *Daemon) runSPF() {
	start := time.Now()
	defer func() { perf.SpfDuration.Add(float64(time.Since(start).Microseconds())) }()

	lsdb := d.Core.LSDB
	n := len(lsdb)
	if n == 0 {
		return
	}

	srcIdx := d.Core.LSDBIndex(d.Core.RouterID)
	if srcIdx == -1 {
		// We haven't installed our own self-LSA yet; nothing to route.
		return
	}

	graph := buildAdjacency(lsdb)
	dist, gw := dijkstra(lsdb, graph, srcIdx)

	// Snapshot() takes rt_lock itself, so this must happen before we take
	// it below, and the "after" snapshot after we release it.
	var before map[netip.Prefix]rtable.Entry
	if state.DebugLogRouteChanges {
		before = make(map[netip.Prefix]rtable.Entry)
		for _, e := range d.Core.RT.Snapshot() {
			before[e.Dest] = e
		}
	}

	d.Core.RT.Lock()
	d.Core.RT.InitTable(d.Core.DefaultGW, d.Core.DefaultGWIface)
	for j, entry := range lsdb {
		for _, lsa := range entry.LSAs {
			d.installRTEntry(lsa, j, dist[j], gw[j])
		}
	}
	d.Core.RT.Unlock()

	if state.DebugLogRouteChanges {
		d.logRouteChanges(before, d.Core.RT.Snapshot())
	}
}

// logRouteChanges is the route-install-time debugging aid §4.5's "Routing-
// table emission" leaves room for: reports new, changed, and retracted
// entries between two full rebuilds. Gated on --lrchange, the way the
// teacher's dbgPrintRouteChanges gates on DBG_log_route_changes.
func (d *Daemon) logRouteChanges(before map[netip.Prefix]rtable.Entry, after []rtable.Entry) {
	seen := make(map[netip.Prefix]bool, len(after))
	for _, e := range after {
		seen[e.Dest] = true
		old, existed := before[e.Dest]
		switch {
		case !existed:
			d.Log.Debug("[rc] new", "dest", e.Dest, "next_hop", e.NextHop, "distance", e.Distance)
		case old.NextHop != e.NextHop || old.Distance != e.Distance:
			d.Log.Debug("[rc] changed", "dest", e.Dest, "next_hop", e.NextHop, "distance", e.Distance, "was_next_hop", old.NextHop, "was_distance", old.Distance)
		}
	}
	for dest, old := range before {
		if !seen[dest] {
			d.Log.Debug("[rc] retracted", "dest", dest, "was_next_hop", old.NextHop)
		}
	}
}

// buildAdjacency is spec §4.5 "Graph construction": for router index k,
// for every LSA in db_k whose rid matches some db_j.rid, set
// graph[k][j] = 1. LSAs referencing an unknown rid contribute no edge.
func buildAdjacency(lsdb []*state.LSDBEntry) [][]bool {
	n := len(lsdb)
	index := make(map[state.RouterID]int, n)
	for i, e := range lsdb {
		index[e.RID] = i
	}

	graph := make([][]bool, n)
	for k := range graph {
		graph[k] = make([]bool, n)
	}
	for k, entry := range lsdb {
		for _, lsa := range entry.LSAs {
			if lsa.AdvertisingRID == 0 {
				continue
			}
			if j, ok := index[lsa.AdvertisingRID]; ok {
				graph[k][j] = true
			}
		}
	}
	return graph
}

// dijkstra is spec §4.5's Dijkstra pass. Returns per-index distance and
// first-hop-neighbor-rid (gw), with gw[srcIdx] == 0.
func dijkstra(lsdb []*state.LSDBEntry, graph [][]bool, srcIdx int) ([]int, []state.RouterID) {
	n := len(lsdb)
	dist := make([]int, n)
	gw := make([]state.RouterID, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = maxDist
	}
	dist[srcIdx] = 0

	index := make(map[state.RouterID]int, n)
	for i, e := range lsdb {
		index[e.RID] = i
	}
	// Initial one-hop distances from the source's own LSAs (§4.5
	// "additionally, for each LSA in the self entry whose rid matches a
	// router, that router's initial distance is set to 1 with
	// gw = that_rid").
	for _, lsa := range lsdb[srcIdx].LSAs {
		if lsa.AdvertisingRID == 0 {
			continue
		}
		if j, ok := index[lsa.AdvertisingRID]; ok && 1 < dist[j] {
			dist[j] = 1
			gw[j] = lsa.AdvertisingRID
		}
	}

	for iter := 0; iter < n-1; iter++ {
		u := -1
		for k := 0; k < n; k++ {
			if visited[k] {
				continue
			}
			if u == -1 || dist[k] < dist[u] {
				u = k
			}
		}
		if u == -1 || dist[u] == maxDist {
			break
		}
		visited[u] = true

		for v := 0; v < n; v++ {
			if !graph[u][v] || visited[v] {
				continue
			}
			nd := dist[u] + 1
			if nd < dist[v] {
				dist[v] = nd
				if u == srcIdx {
					gw[v] = lsdb[v].RID
				} else {
					gw[v] = gw[u]
				}
			}
		}
	}
	return dist, gw
}

// installRTEntry is spec §4.5's "Routing-table emission" for a single LSA
// belonging to LSDB entry index j. Caller holds rt_lock.
func (d *Daemon) installRTEntry(lsa state.LSA, j int, distance int, gw state.RouterID) {
	if distance == maxDist {
		return // unreachable; the SPF builder tolerates this (§7)
	}

	destSubnet := lsa.Subnet

	var newEntry rtable.Entry
	if gw == 0 {
		iface := d.Core.InterfaceForSubnet(destSubnet)
		if iface == nil {
			d.Log.Warn("spf: no local interface for directly-attached subnet", "subnet", destSubnet)
			return
		}
		newEntry = rtable.NewEntry(uint32(destSubnet), uint32(iface.Mask), 0, iface.Name, uint32(distance))
	} else {
		iface := d.Core.InterfaceForNeighbor(gw)
		if iface == nil {
			d.Log.Warn("spf: no egress interface for gateway", "gw", gw)
			return
		}
		newEntry = rtable.NewEntry(uint32(destSubnet), uint32(iface.Mask), gw, iface.Name, uint32(distance))
	}

	if existing, ok := d.Core.RT.Lookup(newEntry.Dest); ok {
		if newEntry.Distance < existing.Distance {
			d.Core.RT.AddEntry(newEntry)
		}
		return
	}
	d.Core.RT.AddEntry(newEntry)
}
